package models

// Activity is one extracurricular offering. The name is the registry key,
// so it is not repeated inside the JSON record.
type Activity struct {
	Name            string   `json:"-" yaml:"name"`
	Description     string   `json:"description" yaml:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" yaml:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants" example:"12"` // informational only
	Participants    []string `json:"participants" yaml:"participants" example:"michael@mergington.edu"`
}

// Clone returns a copy that shares no memory with a.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is signed up for the activity.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
