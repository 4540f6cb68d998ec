package models

import "time"

// ParticipationAction ชนิดของการเปลี่ยนแปลงผู้เข้าร่วม
type ParticipationAction string

const (
	ActionSignup ParticipationAction = "signup"
	ActionCancel ParticipationAction = "cancel"
)

// ParticipationEvent is emitted after a successful signup or cancellation.
type ParticipationEvent struct {
	Activity   string              `json:"activity"`
	Email      string              `json:"email"`
	Action     ParticipationAction `json:"action"`
	OccurredAt time.Time           `json:"occurred_at"`
}
