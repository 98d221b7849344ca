package transfer

import (
	"time"

	"github.com/maheshrc27/postflow-composer/internal/models"
)

// PostCreation is what gets persisted for one dispatch.
type PostCreation struct {
	Content       string
	AccountIDs    []int64
	MediaURLs     []string
	ScheduledTime *time.Time
}

// PostDetails is a post with its media in display order and the failed
// publish attempts recorded against it.
type PostDetails struct {
	Post    *models.Post             `json:"post"`
	Media   []*models.PostMedia      `json:"media"`
	History []*models.PostingHistory `json:"history"`
}
