package queue

import (
	"github.com/maheshrc27/postflow-composer/internal/repository"
)

// Queue handles due posts on the asynq worker side.
type Queue struct {
	pr repository.PostRepository
	sa repository.SelectedAccountRepository
	ac repository.SocialAccountRepository
	ph repository.PostingHistoryRepository
}

func NewQueue(
	pr repository.PostRepository,
	sa repository.SelectedAccountRepository,
	ac repository.SocialAccountRepository,
	ph repository.PostingHistoryRepository) *Queue {
	return &Queue{
		pr: pr,
		sa: sa,
		ac: ac,
		ph: ph,
	}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	PostID int64 `json:"post_id"`
}
