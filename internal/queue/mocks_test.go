package queue

import (
	"context"
	"database/sql"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	args := m.Called(ctx, tx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) UpdatePostStatus(ctx context.Context, status string, postID int64) error {
	args := m.Called(ctx, status, postID)
	return args.Error(0)
}

func (m *MockPostRepository) CheckByUserID(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Remove(ctx context.Context, tx *sql.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type MockSelectedAccountRepository struct {
	mock.Mock
}

func (m *MockSelectedAccountRepository) Create(ctx context.Context, tx *sql.Tx, sa *models.SelectedAccount) error {
	args := m.Called(ctx, tx, sa)
	return args.Error(0)
}

func (m *MockSelectedAccountRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.SelectedAccount, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SelectedAccount), args.Error(1)
}

func (m *MockSelectedAccountRepository) RemoveByPostID(ctx context.Context, tx *sql.Tx, postID int64) error {
	args := m.Called(ctx, tx, postID)
	return args.Error(0)
}

type MockSocialAccountRepository struct {
	mock.Mock
}

func (m *MockSocialAccountRepository) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepository) ListByIDs(ctx context.Context, userID int64, ids []int64) ([]*models.SocialAccount, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).([]*models.SocialAccount), args.Error(1)
}

func (m *MockSocialAccountRepository) CheckByUserID(ctx context.Context, accountID, userID int64) (bool, error) {
	args := m.Called(ctx, accountID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialAccountRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPostingHistoryRepository struct {
	mock.Mock
}

func (m *MockPostingHistoryRepository) Create(ctx context.Context, ph *models.PostingHistory) (int64, error) {
	args := m.Called(ctx, ph)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostingHistoryRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostingHistory, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]*models.PostingHistory), args.Error(1)
}

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}
