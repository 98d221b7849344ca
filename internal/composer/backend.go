package composer

import (
	"context"
	"time"

	"github.com/maheshrc27/postflow-composer/internal/models"
)

// Target is one account a post is sent to.
type Target struct {
	Platform  models.Platform `json:"platform"`
	AccountID int64           `json:"account_id"`
}

// Backend is everything the composer needs from the outside. Failures meant
// for the user should be returned as *RemoteError.
type Backend interface {
	ListAccounts(ctx context.Context) ([]*models.SocialAccount, error)
	ListProfiles(ctx context.Context) ([]*models.Profile, error)
	UploadMedia(ctx context.Context, file FileUpload) (string, error)
	ListLibraryMedia(ctx context.Context) ([]*models.MediaAsset, error)
	DeleteLibraryMedia(ctx context.Context, assetID int64) error
	PublishNow(ctx context.Context, targets []Target, content string, mediaURLs []string) error
	SchedulePublish(ctx context.Context, targets []Target, content string, when time.Time, mediaURLs []string) error
}
