package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/repository"
)

var ErrMediaNotFound = errors.New("Media doesn't exist")

type LibraryService interface {
	List(ctx context.Context, userID int64) ([]*models.MediaAsset, error)
	Get(ctx context.Context, userID, assetID int64) (*models.MediaAsset, error)
	Delete(ctx context.Context, userID, assetID int64) error
}

type libraryService struct {
	ma      repository.MediaAssetRepository
	storage ObjectStorage
}

func NewLibraryService(ma repository.MediaAssetRepository, storage ObjectStorage) LibraryService {
	return &libraryService{
		ma:      ma,
		storage: storage,
	}
}

func (s *libraryService) List(ctx context.Context, userID int64) ([]*models.MediaAsset, error) {
	if userID == 0 {
		err := errors.New("UserID is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	assets, err := s.ma.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Error getting media library")
	}
	if assets == nil {
		assets = []*models.MediaAsset{}
	}
	return assets, nil
}

// Get returns the asset only when it belongs to userID.
func (s *libraryService) Get(ctx context.Context, userID, assetID int64) (*models.MediaAsset, error) {
	if assetID == 0 {
		err := errors.New("asset id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	asset, err := s.ma.GetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("Error getting media info")
	}
	if asset == nil || asset.UserID != userID {
		return nil, ErrMediaNotFound
	}

	return asset, nil
}

func (s *libraryService) Delete(ctx context.Context, userID, assetID int64) error {
	asset, err := s.Get(ctx, userID, assetID)
	if err != nil {
		return err
	}

	if err := s.ma.Remove(ctx, asset.ID); err != nil {
		return fmt.Errorf("Error removing media")
	}

	// a leftover object is only garbage once the row is gone
	if err := s.storage.Delete(ctx, asset.FileName); err != nil {
		slog.Info("media object not deleted", "key", asset.FileName, "error", err)
	}

	return nil
}
