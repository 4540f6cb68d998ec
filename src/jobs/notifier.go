package jobs

import (
	"context"
	"fmt"

	"mergington-activities/src/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Notifier receives participation changes after they are committed.
type Notifier interface {
	Notify(ctx context.Context, e models.ParticipationEvent) error
}

// NopNotifier drops every event. Used when Redis is not configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, models.ParticipationEvent) error { return nil }

// Enqueuer is the part of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier turns events into participation:notify tasks.
type AsynqNotifier struct {
	client   Enqueuer
	maxRetry int
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{client: client, maxRetry: 3}
}

func (n *AsynqNotifier) Notify(ctx context.Context, e models.ParticipationEvent) error {
	task, err := NewParticipationTask(e)
	if err != nil {
		return fmt.Errorf("build participation task: %w", err)
	}
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue(NotificationQueue),
		asynq.MaxRetry(n.maxRetry),
		asynq.TaskID("participation-"+uuid.NewString()),
	)
	if err != nil {
		return fmt.Errorf("enqueue participation task: %w", err)
	}
	return nil
}
