package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/postflow-composer/internal/composer"
	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	ErrUnsupportedMedia = errors.New("unsupported file type")
	ErrMediaTooLarge    = errors.New("file is too large")
)

var allowedMediaTypes = map[string]struct{}{
	"mp4": {}, "mov": {}, "webm": {}, "jpg": {}, "png": {}, "gif": {}, "webp": {},
}

type MediaService interface {
	Upload(ctx context.Context, userID int64, file composer.FileUpload) (*models.MediaAsset, error)
}

type mediaService struct {
	ma      repository.MediaAssetRepository
	storage ObjectStorage
	maxSize int64
}

func NewMediaService(ma repository.MediaAssetRepository, storage ObjectStorage, maxSize int64) MediaService {
	return &mediaService{
		ma:      ma,
		storage: storage,
		maxSize: maxSize,
	}
}

// Upload checks the file content, stores it and records it in the library.
func (s *mediaService) Upload(ctx context.Context, userID int64, file composer.FileUpload) (*models.MediaAsset, error) {
	if userID == 0 {
		err := errors.New("UserID is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	if s.maxSize > 0 && int64(len(file.Data)) > s.maxSize {
		return nil, fmt.Errorf("%w: %s is larger than %s", ErrMediaTooLarge, file.Name, humanize.IBytes(uint64(s.maxSize)))
	}

	kind, err := filetype.Match(file.Data)
	if err != nil || kind == types.Unknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, file.Name)
	}
	if _, ok := allowedMediaTypes[kind.Extension]; !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedMedia, file.Name, kind.Extension)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate object key: %w", err)
	}
	key := fmt.Sprintf("media/%d/%s.%s", userID, id, kind.Extension)

	fileURL, err := s.storage.Put(ctx, key, file.Data, kind.MIME.Value)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", file.Name, err)
	}

	asset := &models.MediaAsset{
		UserID:   userID,
		FileName: key,
		FileType: kind.MIME.Value,
		FileSize: int64(len(file.Data)),
		FileURL:  fileURL,
	}

	asset.ID, err = s.ma.Create(ctx, nil, asset)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			slog.Info("orphaned media object", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("save media asset: %w", err)
	}

	slog.Info("media uploaded", "user_id", userID, "key", key, "size", humanize.IBytes(uint64(asset.FileSize)))
	return asset, nil
}
