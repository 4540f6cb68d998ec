package activities

import (
	"errors"
	"fmt"
	"sync"

	"mergington-activities/src/models"
)

var (
	ErrActivityNotFound    = errors.New("Activity not found")
	ErrAlreadySignedUp     = errors.New("Student is already signed up")
	ErrParticipantNotFound = errors.New("Student not found in this activity")
)

// Registry owns the activity catalogue and its participant lists.
// All methods are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// NewRegistry builds a registry from the seed catalogue. Names must be unique
// and no seed activity may list the same email twice.
func NewRegistry(seed []models.Activity) (*Registry, error) {
	r := &Registry{activities: make(map[string]*models.Activity, len(seed))}
	for _, a := range seed {
		if _, dup := r.activities[a.Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q", a.Name)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := seen[p]; dup {
				return nil, fmt.Errorf("activity %q lists %s twice", a.Name, p)
			}
			seen[p] = struct{}{}
		}
		cp := a.Clone()
		r.activities[a.Name] = &cp
	}
	return r, nil
}

// List ดึงกิจกรรมทั้งหมด (สำเนา)
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a copy of one activity.
func (r *Registry) Get(name string) (models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the activity's participants and returns the new
// membership. max_participants is not enforced.
func (r *Registry) Signup(name, email string) (models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return models.Activity{}, ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return a.Clone(), nil
}

// Cancel removes email from the activity, keeping the order of the others.
func (r *Registry) Cancel(name, email string) (models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return a.Clone(), nil
		}
	}
	return models.Activity{}, ErrParticipantNotFound
}
