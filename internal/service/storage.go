package service

import (
	"context"
	"fmt"
	"strings"

	config "github.com/maheshrc27/postflow-composer/configs"
)

// ObjectStorage stores uploaded media and reports the public URL of each object.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewObjectStorage(ctx context.Context, cfg config.Config) (ObjectStorage, error) {
	switch cfg.StorageDriver {
	case "r2":
		return NewR2Storage(ctx, cfg)
	case "minio":
		return NewMinIOStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func publicObjectURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(key, "/")
}
