package queue

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client used to hand posts to the worker.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EnqueuePost makes the post due after delay. A zero delay means now.
func EnqueuePost(client Enqueuer, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = client.Enqueue(task,
		asynq.ProcessIn(delay),
		asynq.TaskID(fmt.Sprintf("post:%d", payload.PostID)),
		asynq.MaxRetry(5),
	)
	if err != nil {
		return err
	}

	slog.Info("task scheduled", "post_id", payload.PostID, "delay", delay.Round(time.Second))
	return nil
}
