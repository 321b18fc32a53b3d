package service

import (
	"context"
	"errors"
	"io"

	"socialCPT/internal/apperror"
	"socialCPT/internal/storage"
)

var ErrStorageDisabled = errors.New("image storage is not configured")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ImageService interface {
	Upload(ctx context.Context, ownerID, fileName, contentType string, file io.Reader, size int64) (string, error)
}

type imageService struct {
	storage storage.Storage
}

func NewImageService(store storage.Storage) ImageService {
	return &imageService{storage: store}
}

// Upload stores the image and returns the public URL clients put into a
// post imageUrl or a profile photo.
func (s *imageService) Upload(ctx context.Context, ownerID, fileName, contentType string, file io.Reader, size int64) (string, error) {
	if s.storage == nil {
		return "", ErrStorageDisabled
	}
	if !allowedImageTypes[contentType] {
		return "", apperror.Validation("Unsupported image type %q", contentType)
	}
	if size <= 0 {
		return "", apperror.Validation("Image file is empty")
	}

	_, url, err := s.storage.UploadImage(ctx, ownerID, fileName, file, size, contentType)
	if err != nil {
		return "", err
	}

	return url, nil
}
