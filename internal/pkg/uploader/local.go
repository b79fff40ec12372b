package uploader

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalUploader writes files under a local (or mounted) directory and
// returns URLs rooted at baseURL. The server serves the directory as
// static content.
type LocalUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, baseURL: baseURL}, nil
}

func (u *LocalUploader) UploadFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Unique filename: YYYYMMDD/uuid.ext, one subdirectory per day.
	ext := filepath.Ext(file.Filename)
	day := time.Now().Format("20060102")
	name := uuid.New().String() + ext

	if err := os.MkdirAll(filepath.Join(u.dir, day), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(u.dir, day, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", u.baseURL, day, name), nil
}
