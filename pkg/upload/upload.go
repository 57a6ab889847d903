package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is the hard ceiling for a single uploaded image.
	MaxFileSize = 10 << 20 // 10 MiB

	// PublicPrefix is the URL path under which saved files are served.
	PublicPrefix = "/uploads"
)

var (
	ErrFileTooLarge    = errors.New("uploaded file exceeds the 10 MiB limit")
	ErrUnsupportedType = errors.New("only image files are allowed (jpeg, jpg, png, gif, webp)")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Saver validates uploaded images and persists them to a local directory.
type Saver struct {
	dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Saver{dir: dir}, nil
}

// Save writes the uploaded file to disk under a collision-resistant name and
// returns the public path it will be served from. Both the file extension and
// the declared content type must be in the image allow-list.
func (s *Saver) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		return "", ErrUnsupportedType
	}

	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return path.Join(PublicPrefix, name), nil
}

// Remove deletes the file behind a public path previously returned by Save.
func (s *Saver) Remove(publicPath string) error {
	name := path.Base(publicPath)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid upload path %q", publicPath)
	}
	return os.Remove(filepath.Join(s.dir, name))
}
