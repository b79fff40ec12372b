package uploader

import (
	"fmt"
	"mime/multipart"

	"github.com/renzmar06/socialgolf-server/internal/pkg/config"
)

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	UploadFile(file *multipart.FileHeader) (string, error)
}

// GlobalUploader instance, selected by upload.driver.
var GlobalUploader Uploader

// InitUploader wires the configured storage backend.
func InitUploader() error {
	cfg := config.GlobalConfig.Upload

	switch cfg.Driver {
	case "", "local":
		u, err := NewLocalUploader(cfg.Dir, cfg.BaseURL)
		if err != nil {
			return err
		}
		GlobalUploader = u
	case "oss":
		u, err := NewAliyunOSSUploader()
		if err != nil {
			return err
		}
		GlobalUploader = u
	default:
		return fmt.Errorf("unknown upload driver: %s", cfg.Driver)
	}

	return nil
}
