package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"mergington-activities/src/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// HandleParticipationTask logs the confirmation for a signup or cancellation.
// Malformed payloads are not retried.
func HandleParticipationTask(log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var e models.ParticipationEvent
		if err := json.Unmarshal(t.Payload(), &e); err != nil {
			log.Error("❌ Payload decode error", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		if e.Activity == "" || e.Email == "" {
			log.Warn("⚠️ Incomplete participation payload, skipping", zap.ByteString("payload", t.Payload()))
			return fmt.Errorf("incomplete payload: %w", asynq.SkipRetry)
		}

		var subject string
		switch e.Action {
		case models.ActionSignup:
			subject = fmt.Sprintf("You are signed up for %s", e.Activity)
		case models.ActionCancel:
			subject = fmt.Sprintf("Your %s signup was cancelled", e.Activity)
		default:
			return fmt.Errorf("unknown action %q: %w", e.Action, asynq.SkipRetry)
		}

		log.Info("✅ Participation confirmation",
			zap.String("to", e.Email),
			zap.String("subject", subject),
			zap.String("activity", e.Activity),
			zap.String("action", string(e.Action)),
			zap.Time("occurred_at", e.OccurredAt),
		)
		return nil
	}
}

// NewServeMux binds the job handlers to their task types.
func NewServeMux(log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeParticipationNotify, HandleParticipationTask(log))
	return mux
}

// zapAsynqLogger adapts zap to asynq's Logger interface.
type zapAsynqLogger struct {
	s *zap.SugaredLogger
}

func NewAsynqLogger(log *zap.Logger) asynq.Logger {
	return zapAsynqLogger{s: log.Named("asynq").Sugar()}
}

func (l zapAsynqLogger) Debug(args ...interface{}) { l.s.Debug(args...) }
func (l zapAsynqLogger) Info(args ...interface{})  { l.s.Info(args...) }
func (l zapAsynqLogger) Warn(args ...interface{})  { l.s.Warn(args...) }
func (l zapAsynqLogger) Error(args ...interface{}) { l.s.Error(args...) }
func (l zapAsynqLogger) Fatal(args ...interface{}) { l.s.Fatal(args...) }
