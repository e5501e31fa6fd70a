package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// maxUploadSize caps uploads at 10MB, matching the limit advertised to clients.
const maxUploadSize = 10 << 20

// allowedExtensions is the upload allow-list: images plus the document
// formats accepted for compliance submissions.
var allowedExtensions = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {},
	".pdf": {}, ".doc": {}, ".docx": {},
}

// readUpload extracts and validates a multipart file field. A missing field
// returns (nil, nil) so callers decide whether the upload is required.
func readUpload(fileHeader *multipart.FileHeader) (*ports.ImageUpload, error) {
	if fileHeader == nil {
		return nil, nil
	}
	if fileHeader.Size > maxUploadSize {
		return nil, domain.ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, domain.ErrInvalidUpload
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadSize {
		return nil, domain.ErrUploadTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &ports.ImageUpload{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}, nil
}
