package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postflow-composer/internal/models"
)

const accountNotConnected = "social account is no longer connected"

func (j *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	return j.PublishPost(ctx, payload.PostID)
}

// PublishPost records one posting history row per target and settles the post
// status. Posts that were removed or already published are skipped.
func (j *Queue) PublishPost(ctx context.Context, postID int64) error {
	post, err := j.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		slog.Info("post no longer exists", "post_id", postID)
		return nil
	}
	if post.Status == models.PostStatusPublished {
		slog.Info("post already published", "post_id", postID)
		return nil
	}

	accountsSelected, err := j.sa.ListByPostID(ctx, postID)
	if err != nil {
		return err
	}
	if len(accountsSelected) == 0 {
		slog.Info("no accounts selected for publishing", "post_id", postID)
		return j.pr.UpdatePostStatus(ctx, models.PostStatusFailed, postID)
	}

	var (
		wg        sync.WaitGroup
		delivered atomic.Int32
	)
	semaphore := make(chan struct{}, 10)

	record := func(selected *models.SelectedAccount) {
		defer wg.Done()
		defer func() { <-semaphore }()

		history := models.PostingHistory{
			UserID:    post.UserID,
			PostID:    postID,
			AccountID: selected.AccountID,
			Platform:  selected.Platform,
		}

		acc, err := j.ac.GetByID(ctx, selected.AccountID)
		switch {
		case err != nil:
			history.ErrorMessage = err.Error()
		case acc == nil:
			history.ErrorMessage = accountNotConnected
		default:
			delivered.Add(1)
		}
		if history.ErrorMessage != "" {
			slog.Info("post not handed to platform", "post_id", postID, "account_id", selected.AccountID, "reason", history.ErrorMessage)
		}

		if _, err := j.ph.Create(ctx, &history); err != nil {
			slog.Error("error saving posting history", "post_id", postID, "error", err)
		}
	}

	for _, selected := range accountsSelected {
		wg.Add(1)
		semaphore <- struct{}{}
		go record(selected)
	}
	wg.Wait()

	status := models.PostStatusPublished
	if delivered.Load() == 0 {
		status = models.PostStatusFailed
	}
	return j.pr.UpdatePostStatus(ctx, status, postID)
}
