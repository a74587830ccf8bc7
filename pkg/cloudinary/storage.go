package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/campustrack/achievement_service/internal/interfaces"
)

// CloudinaryStorage keeps certificate/photo blobs in Cloudinary instead of
// the local disk. Selected with FILE_STORAGE=cloudinary.
type CloudinaryStorage struct {
	cld *cld.Cloudinary
}

func NewCloudinaryStorage(cloud *cld.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cloud}
}

func (s *CloudinaryStorage) Save(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (interfaces.StoredObject, error) {
	res, err := s.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     filename,
			ResourceType: "auto",
		},
	)
	if err != nil {
		return interfaces.StoredObject{}, err
	}

	return interfaces.StoredObject{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
	}, nil
}

func (s *CloudinaryStorage) Remove(ctx context.Context, obj interfaces.StoredObject) error {
	if obj.PublicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: obj.PublicID,
	})
	return err
}
