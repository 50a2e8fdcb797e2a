package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/service"
)

// Multipart bodies larger than this spill to disk while parsing. The
// per-file size limit is enforced separately by the services.
const maxMultipartMemory = 8 << 20

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation("Invalid id")
	}
	return id, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrValidation("Invalid request body")
	}
	return nil
}

// formValue distinguishes an absent field from one set to an empty
// string, so multipart updates can stay partial.
func formValue(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[name]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func formInt(r *http.Request, name string) (*int, error) {
	s := formValue(r, name)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, domain.ErrValidation("Invalid value for " + name)
	}
	return &n, nil
}

func formDate(r *http.Request, name string) (*domain.Date, error) {
	s := formValue(r, name)
	if s == nil {
		return nil, nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, domain.ErrValidation("Invalid date format, expected YYYY-MM-DD")
	}
	return &d, nil
}

// formFile opens the named upload part if present. The returned closer
// must be called once the upload has been consumed.
func formFile(r *http.Request, name string) (*service.ImageUpload, func(), error) {
	file, header, err := r.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, domain.ErrValidation("File upload failed")
	}
	up := &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
	return up, func() { file.Close() }, nil
}
