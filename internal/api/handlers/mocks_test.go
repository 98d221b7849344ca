package handlers

import (
	"context"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/composer"
	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/transfer"
	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListAccounts(ctx context.Context) ([]*models.SocialAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockBackend) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}

func (m *MockBackend) UploadMedia(ctx context.Context, file composer.FileUpload) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) ListLibraryMedia(ctx context.Context) ([]*models.MediaAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MediaAsset), args.Error(1)
}

func (m *MockBackend) DeleteLibraryMedia(ctx context.Context, assetID int64) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockBackend) PublishNow(ctx context.Context, targets []composer.Target, content string, mediaURLs []string) error {
	args := m.Called(ctx, targets, content, mediaURLs)
	return args.Error(0)
}

func (m *MockBackend) SchedulePublish(ctx context.Context, targets []composer.Target, content string, when time.Time, mediaURLs []string) error {
	args := m.Called(ctx, targets, content, when, mediaURLs)
	return args.Error(0)
}

type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) List(ctx context.Context, userID int64) ([]*models.MediaAsset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MediaAsset), args.Error(1)
}

func (m *MockLibraryService) Get(ctx context.Context, userID, assetID int64) (*models.MediaAsset, error) {
	args := m.Called(ctx, userID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaAsset), args.Error(1)
}

func (m *MockLibraryService) Delete(ctx context.Context, userID, assetID int64) error {
	args := m.Called(ctx, userID, assetID)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, userID int64, pc *transfer.PostCreation) (int64, time.Duration, error) {
	args := m.Called(ctx, userID, pc)
	return args.Get(0).(int64), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockPostService) List(ctx context.Context, userID int64) ([]*models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostService) PostInfo(ctx context.Context, postID, userID int64) (*transfer.PostDetails, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.PostDetails), args.Error(1)
}

func (m *MockPostService) MarkFailed(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) Remove(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

type MockPlatformService struct {
	mock.Mock
}

func (m *MockPlatformService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockPlatformService) Delete(ctx context.Context, userID, accountID int64) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) List(ctx context.Context, userID int64) ([]*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Profile), args.Error(1)
}
