package api

import (
	"testing"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsConfigWildcardDropsCredentials(t *testing.T) {
	c := corsConfig("*")

	assert.Equal(t, "*", c.AllowOrigins)
	assert.False(t, c.AllowCredentials)

	// cors.New panics when credentials are paired with a wildcard origin,
	// which is the out-of-the-box BASE_URL.
	assert.NotPanics(t, func() { cors.New(c) })
}

func TestCorsConfigConcreteOriginSendsCredentials(t *testing.T) {
	c := corsConfig("https://portal.campus.edu")

	assert.Equal(t, "https://portal.campus.edu", c.AllowOrigins)
	assert.True(t, c.AllowCredentials)
}

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	cfg := gormConfig()

	require.NotNil(t, cfg)
	assert.True(t, cfg.TranslateError)
}
