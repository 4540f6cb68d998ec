package test

import (
	"testing"
	"time"

	"mergington-activities/src/models"
)

// TestTimer is a utility for measuring test execution time
type TestTimer struct {
	start time.Time
	name  string
}

// NewTestTimer creates a new test timer
func NewTestTimer(name string) *TestTimer {
	return &TestTimer{
		start: time.Now(),
		name:  name,
	}
}

// Stop stops the timer and logs the duration
func (t *TestTimer) Stop(tb testing.TB) time.Duration {
	tb.Helper()
	duration := time.Since(t.start)
	tb.Logf("⏱️  %s took %v", t.name, duration)
	return duration
}

// PerformanceAssertion checks if a test meets performance requirements
func PerformanceAssertion(tb testing.TB, testName string, duration time.Duration, maxDuration time.Duration) {
	tb.Helper()
	if duration > maxDuration {
		tb.Errorf("❌ %s performance test failed: took %v, expected less than %v", testName, duration, maxDuration)
	}
}

// SampleActivities is a small catalogue shared by package tests.
func SampleActivities() []models.Activity {
	return []models.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "_test_empty",
			Description:     "Test",
			Schedule:        "Test",
			MaxParticipants: 1,
			Participants:    []string{},
		},
	}
}
