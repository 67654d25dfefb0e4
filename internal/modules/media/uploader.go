package media

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, path, filename string, data []byte) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("initializing cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, path, filename string, data []byte) (string, error) {
	publicID := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.New().String())
	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   path,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", filename, err)
	}
	return resp.SecureURL, nil
}

// PlaceholderUploader serves dev mode, where nothing leaves the machine.
type PlaceholderUploader struct{}

func (PlaceholderUploader) Upload(ctx context.Context, path, filename string, data []byte) (string, error) {
	return "https://via.placeholder.com/800x600.png?text=DEV+IMAGE", nil
}
