package jobs

import (
	"encoding/json"
	"strings"

	"mergington-activities/src/models"

	"github.com/hibiken/asynq"
)

const (
	TypeParticipationNotify = "participation:notify"
	NotificationQueue       = "notifications"
)

// NormalizeEvent trims the fields copied from the request.
func NormalizeEvent(e *models.ParticipationEvent) {
	e.Activity = strings.TrimSpace(e.Activity)
	e.Email = strings.TrimSpace(e.Email)
}

func NewParticipationTask(e models.ParticipationEvent) (*asynq.Task, error) {
	NormalizeEvent(&e)
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeParticipationNotify, payload), nil
}
