package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postflow-composer/internal/composer"
	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_SchedulePublish(t *testing.T) {
	posts := new(MockPostService)
	client := new(MockEnqueuer)
	w := NewWorkspace(7, Services{Posts: posts, Queue: client})
	ctx := context.Background()
	when := time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)

	posts.On("CreatePost", ctx, int64(7), mock.MatchedBy(func(pc *transfer.PostCreation) bool {
		return pc.Content == "Later" &&
			assert.ObjectsAreEqual([]int64{10, 11}, pc.AccountIDs) &&
			pc.ScheduledTime != nil && pc.ScheduledTime.Equal(when)
	})).Return(int64(42), 30*time.Minute, nil).Once()
	client.On("Enqueue", mock.Anything, mock.Anything).Return(&asynq.TaskInfo{}, nil).Once()

	targets := []composer.Target{
		{Platform: models.PlatformTwitter, AccountID: 10},
		{Platform: models.PlatformFacebook, AccountID: 11},
	}
	require.NoError(t, w.SchedulePublish(ctx, targets, "Later", when, []string{}))

	posts.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestWorkspace_PublishNowEnqueueFailure(t *testing.T) {
	posts := new(MockPostService)
	client := new(MockEnqueuer)
	w := NewWorkspace(7, Services{Posts: posts, Queue: client})
	ctx := context.Background()

	posts.On("CreatePost", ctx, int64(7), mock.MatchedBy(func(pc *transfer.PostCreation) bool {
		return pc.ScheduledTime == nil
	})).Return(int64(42), time.Duration(0), nil).Once()
	client.On("Enqueue", mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()
	posts.On("MarkFailed", ctx, int64(42)).Return(nil).Once()

	err := w.PublishNow(ctx, []composer.Target{{Platform: models.PlatformTwitter, AccountID: 10}}, "hi", []string{})

	var re *composer.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Error scheduling post", re.Message)
	posts.AssertExpectations(t)
}

func TestWorkspace_ErrorMessages(t *testing.T) {
	media := new(MockMediaService)
	platforms := new(MockPlatformService)
	w := NewWorkspace(7, Services{Media: media, Platforms: platforms})
	ctx := context.Background()

	media.On("Upload", ctx, int64(7), mock.Anything).
		Return(nil, fmt.Errorf("%w: notes.txt", ErrUnsupportedMedia)).Once()
	platforms.On("List", ctx, int64(7)).Return(nil, errors.New("pq: connection refused")).Once()

	_, err := w.UploadMedia(ctx, composer.FileUpload{Name: "notes.txt"})
	var re *composer.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "unsupported file type: notes.txt", re.Message)

	_, err = w.ListAccounts(ctx)
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Failed to load accounts", re.Message, "internal details stay out of the message")
}

func TestWorkspace_UploadMediaReturnsURL(t *testing.T) {
	media := new(MockMediaService)
	w := NewWorkspace(7, Services{Media: media})

	media.On("Upload", mock.Anything, int64(7), mock.Anything).
		Return(&models.MediaAsset{ID: 1, FileURL: "https://media.example.com/x.png"}, nil).Once()

	uri, err := w.UploadMedia(context.Background(), composer.FileUpload{Name: "x.png", Data: pngBytes})
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/x.png", uri)
}
