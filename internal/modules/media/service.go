package media

import (
	"context"
	"errors"
	"regexp"
)

// ErrInvalidPath rejects upload folders outside the expected namespace.
var ErrInvalidPath = errors.New("invalid upload path")

var pathPattern = regexp.MustCompile(`^[a-zA-Z0-9_/-]+$`)

type Service interface {
	// Store watermarks (unless skipped) and uploads an image, returning
	// its public URL.
	Store(ctx context.Context, path, filename string, data []byte, skipWatermark bool) (string, error)
}

type service struct {
	uploader      Uploader
	watermarkText string
}

func NewService(uploader Uploader, watermarkText string) Service {
	return &service{uploader: uploader, watermarkText: watermarkText}
}

func (s *service) Store(ctx context.Context, path, filename string, data []byte, skipWatermark bool) (string, error) {
	if path == "" || !pathPattern.MatchString(path) {
		return "", ErrInvalidPath
	}
	if !skipWatermark && s.watermarkText != "" {
		data = Watermark(data, s.watermarkText)
	}
	return s.uploader.Upload(ctx, path, filename, data)
}
