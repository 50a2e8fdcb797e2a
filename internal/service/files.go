package service

import (
	"io"

	"github.com/jeunessebiere/site-api/internal/domain"
)

const maxUploadSize = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageUpload is an incoming file before validation. Size and ContentType
// come from the multipart part headers; Content streams the bytes.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStore is the upload backend the services write to.
type FileStore interface {
	Save(kind, originalName string, content io.Reader) (string, error)
	Remove(relPath string) error
	PublicURL(relPath string) string
}

func validateImage(up *ImageUpload) error {
	if up.Size > maxUploadSize {
		return domain.ErrValidation("File too large. Maximum size is 5MB")
	}
	if !allowedImageTypes[up.ContentType] {
		return domain.ErrValidation("Invalid file type. Only JPEG, PNG and WebP are allowed")
	}
	return nil
}

// stageImage validates the upload and writes it to the store. The caller
// must remove the staged file if the surrounding database operation
// fails.
func stageImage(store FileStore, kind string, up *ImageUpload) (string, error) {
	if err := validateImage(up); err != nil {
		return "", err
	}
	path, err := store.Save(kind, up.Filename, up.Content)
	if err != nil {
		return "", domain.ErrInternal("Failed to save file")
	}
	return path, nil
}
