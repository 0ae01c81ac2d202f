package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jesse-projects/onsite-crash-champions/config"
)

const (
	minPhotos     = 3
	maxPhotos     = 10
	maxPhotoBytes = 10 << 20 // 10 MiB per file
)

// Images and PDFs only, matched against both the file extension and the
// declared MIME type.
var allowedPhotoExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

var allowedPhotoMIMEs = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// validatePhotos checks every uploaded file before a single byte is
// persisted, so a bad file never leaves a partial photo set behind.
func validatePhotos(files []*multipart.FileHeader) error {
	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedPhotoExts[ext] {
			return fmt.Errorf("file %q: only images and PDFs are allowed", fh.Filename)
		}
		declared := fh.Header.Get("Content-Type")
		if i := strings.IndexByte(declared, ';'); i >= 0 {
			declared = declared[:i]
		}
		declared = strings.TrimSpace(strings.ToLower(declared))
		if !allowedPhotoMIMEs[declared] {
			return fmt.Errorf("file %q: only images and PDFs are allowed", fh.Filename)
		}
		if fh.Size > maxPhotoBytes {
			return fmt.Errorf("file %q exceeds the 10MB limit", fh.Filename)
		}
	}
	return nil
}

// savePhoto writes one uploaded file to the upload directory under a
// collision-resistant generated name and returns the stored name and size.
func savePhoto(fh *multipart.FileHeader) (string, int64, error) {
	if err := os.MkdirAll(config.UploadDir, 0755); err != nil {
		return "", 0, fmt.Errorf("create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	src, err := fh.Open()
	if err != nil {
		return "", 0, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(config.UploadDir, name))
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return "", 0, fmt.Errorf("save file: %w", err)
	}
	return name, written, nil
}
