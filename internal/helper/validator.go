package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs tag validation and flattens the failures into one
// client-facing message.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		case "min":
			msgs = append(msgs, strings.ToLower(fe.Field())+" must be at least "+fe.Param()+" characters")
		case "max":
			msgs = append(msgs, strings.ToLower(fe.Field())+" must be at most "+fe.Param())
		case "email":
			msgs = append(msgs, "invalid email")
		case "oneof":
			msgs = append(msgs, strings.ToLower(fe.Field())+" must be one of: "+fe.Param())
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return &ValidationMessages{Messages: msgs}
}

type ValidationMessages struct {
	Messages []string
}

func (v *ValidationMessages) Error() string {
	return strings.Join(v.Messages, "; ")
}
