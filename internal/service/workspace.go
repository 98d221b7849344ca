package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/composer"
	"github.com/maheshrc27/postflow-composer/internal/models"
	"github.com/maheshrc27/postflow-composer/internal/queue"
	"github.com/maheshrc27/postflow-composer/internal/transfer"
)

// Services bundles the collaborators every workspace shares.
type Services struct {
	Platforms PlatformService
	Profiles  ProfileService
	Library   LibraryService
	Media     MediaService
	Posts     PostService
	Queue     queue.Enqueuer
}

// Workspace is the composer backend of one signed-in user.
type Workspace struct {
	userID int64
	s      Services
}

func NewWorkspace(userID int64, s Services) *Workspace {
	return &Workspace{userID: userID, s: s}
}

var _ composer.Backend = (*Workspace)(nil)

// userFacing errors carry a message worth showing as is.
var userFacing = []error{
	ErrUnsupportedMedia,
	ErrMediaTooLarge,
	ErrMediaNotFound,
	ErrAccountNotFound,
	ErrPostNotFound,
	ErrEmptyPost,
	ErrNoTargets,
}

// remoteError wraps err for the composer. Known errors keep their own text;
// anything else gets msg, or the composer's fallback when msg is empty.
func remoteError(err error, msg string) error {
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return &composer.RemoteError{Message: err.Error(), Err: err}
		}
	}
	return &composer.RemoteError{Message: msg, Err: err}
}

func (w *Workspace) ListAccounts(ctx context.Context) ([]*models.SocialAccount, error) {
	accounts, err := w.s.Platforms.List(ctx, w.userID)
	if err != nil {
		return nil, remoteError(err, "Failed to load accounts")
	}
	return accounts, nil
}

func (w *Workspace) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := w.s.Profiles.List(ctx, w.userID)
	if err != nil {
		return nil, remoteError(err, "Failed to load profiles")
	}
	return profiles, nil
}

func (w *Workspace) UploadMedia(ctx context.Context, file composer.FileUpload) (string, error) {
	asset, err := w.s.Media.Upload(ctx, w.userID, file)
	if err != nil {
		slog.Info("upload rejected", "user_id", w.userID, "file", file.Name, "error", err)
		return "", remoteError(err, "")
	}
	return asset.FileURL, nil
}

func (w *Workspace) ListLibraryMedia(ctx context.Context) ([]*models.MediaAsset, error) {
	assets, err := w.s.Library.List(ctx, w.userID)
	if err != nil {
		return nil, remoteError(err, "Failed to load media library")
	}
	return assets, nil
}

func (w *Workspace) DeleteLibraryMedia(ctx context.Context, assetID int64) error {
	if err := w.s.Library.Delete(ctx, w.userID, assetID); err != nil {
		return remoteError(err, "Failed to delete media")
	}
	return nil
}

func (w *Workspace) PublishNow(ctx context.Context, targets []composer.Target, content string, mediaURLs []string) error {
	return w.dispatch(ctx, targets, content, nil, mediaURLs)
}

func (w *Workspace) SchedulePublish(ctx context.Context, targets []composer.Target, content string, when time.Time, mediaURLs []string) error {
	return w.dispatch(ctx, targets, content, &when, mediaURLs)
}

func (w *Workspace) dispatch(ctx context.Context, targets []composer.Target, content string, when *time.Time, mediaURLs []string) error {
	ids := make([]int64, 0, len(targets))
	for _, t := range targets {
		ids = append(ids, t.AccountID)
	}

	postID, delay, err := w.s.Posts.CreatePost(ctx, w.userID, &transfer.PostCreation{
		Content:       content,
		AccountIDs:    ids,
		MediaURLs:     mediaURLs,
		ScheduledTime: when,
	})
	if err != nil {
		return remoteError(err, "")
	}

	if err := queue.EnqueuePost(w.s.Queue, queue.PublishPostPayload{PostID: postID}, delay); err != nil {
		slog.Error("enqueue failed", "post_id", postID, "error", err)
		if markErr := w.s.Posts.MarkFailed(ctx, postID); markErr != nil {
			slog.Error("could not mark post failed", "post_id", postID, "error", markErr)
		}
		return &composer.RemoteError{Message: "Error scheduling post", Err: fmt.Errorf("enqueue post %d: %w", postID, err)}
	}

	return nil
}
