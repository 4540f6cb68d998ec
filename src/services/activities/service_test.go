package activities_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"mergington-activities/src/models"
	"mergington-activities/src/services/activities"
	"mergington-activities/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *activities.Registry {
	t.Helper()
	r, err := activities.NewRegistry(test.SampleActivities())
	require.NoError(t, err)
	return r
}

func assertNoDuplicates(t *testing.T, all map[string]models.Activity) {
	t.Helper()
	for name, a := range all {
		seen := map[string]bool{}
		for _, p := range a.Participants {
			assert.False(t, seen[p], "%s lists %s twice", name, p)
			seen[p] = true
		}
	}
}

func TestRegistryList(t *testing.T) {
	r := newRegistry(t)

	all := r.List()
	require.Len(t, all, 3)
	assert.Equal(t, 12, all["Chess Club"].MaxParticipants)
	assert.Equal(t, []string{"emma@mergington.edu", "sophia@mergington.edu"}, all["Programming Class"].Participants)
	assert.NotNil(t, all["_test_empty"].Participants)

	t.Run("ReturnsCopies", func(t *testing.T) {
		listed := r.List()
		chess := listed["Chess Club"]
		chess.Participants[0] = "mallory@mergington.edu"
		listed["Chess Club"] = chess
		delete(listed, "Programming Class")

		again := r.List()
		assert.Equal(t, "michael@mergington.edu", again["Chess Club"].Participants[0])
		assert.Contains(t, again, "Programming Class")
	})
}

func TestRegistrySignup(t *testing.T) {
	t.Run("AppendsEmail", func(t *testing.T) {
		r := newRegistry(t)
		timer := test.NewTestTimer("Signup")

		a, err := r.Signup("Chess Club", "alice@test.com")
		test.PerformanceAssertion(t, "Signup", timer.Stop(t), 50*time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "alice@test.com"}, a.Participants)
		assert.Contains(t, r.List()["Chess Club"].Participants, "alice@test.com")
	})

	t.Run("DuplicateIsConflict", func(t *testing.T) {
		r := newRegistry(t)

		_, err := r.Signup("_test_empty", "bob@test.com")
		require.NoError(t, err)
		_, err = r.Signup("_test_empty", "bob@test.com")
		assert.ErrorIs(t, err, activities.ErrAlreadySignedUp)

		a, err := r.Get("_test_empty")
		require.NoError(t, err)
		assert.Equal(t, []string{"bob@test.com"}, a.Participants)
	})

	t.Run("SeededParticipantIsConflict", func(t *testing.T) {
		r := newRegistry(t)
		_, err := r.Signup("Chess Club", "michael@mergington.edu")
		assert.ErrorIs(t, err, activities.ErrAlreadySignedUp)
	})

	t.Run("CapacityNotEnforced", func(t *testing.T) {
		r := newRegistry(t)
		for i := 0; i < 3; i++ {
			_, err := r.Signup("_test_empty", fmt.Sprintf("student%d@test.com", i))
			require.NoError(t, err)
		}
		a, _ := r.Get("_test_empty")
		assert.Len(t, a.Participants, 3)
		assert.Equal(t, 1, a.MaxParticipants)
	})
}

func TestRegistryCancel(t *testing.T) {
	t.Run("RemovesEmailKeepingOrder", func(t *testing.T) {
		r, err := activities.NewRegistry([]models.Activity{{
			Name:         "_test_delete",
			Participants: []string{"a@test.com", "charlie@test.com", "diana@test.com"},
		}})
		require.NoError(t, err)

		a, err := r.Cancel("_test_delete", "charlie@test.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"a@test.com", "diana@test.com"}, a.Participants)

		_, err = r.Cancel("_test_delete", "charlie@test.com")
		assert.ErrorIs(t, err, activities.ErrParticipantNotFound)
	})

	t.Run("NonMemberIsNotFound", func(t *testing.T) {
		r := newRegistry(t)
		_, err := r.Cancel("Chess Club", "nothere@test.com")
		assert.ErrorIs(t, err, activities.ErrParticipantNotFound)
	})
}

func TestRegistrySignupCancelSignup(t *testing.T) {
	r := newRegistry(t)
	email := "frank@test.com"

	_, err := r.Signup("_test_empty", email)
	require.NoError(t, err)
	_, err = r.Cancel("_test_empty", email)
	require.NoError(t, err)
	_, err = r.Signup("_test_empty", email)
	require.NoError(t, err)

	assert.Equal(t, []string{email}, r.List()["_test_empty"].Participants)
}

func TestRegistryUnknownActivity(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Get("no-such-activity")
	assert.ErrorIs(t, err, activities.ErrActivityNotFound)
	_, err = r.Signup("no-such-activity", "test@test.com")
	assert.ErrorIs(t, err, activities.ErrActivityNotFound)
	_, err = r.Cancel("no-such-activity", "test@test.com")
	assert.ErrorIs(t, err, activities.ErrActivityNotFound)

	// the name is matched exactly
	_, err = r.Signup("chess club", "test@test.com")
	assert.ErrorIs(t, err, activities.ErrActivityNotFound)
}

func TestRegistryConcurrentSignups(t *testing.T) {
	r := newRegistry(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		email := fmt.Sprintf("student%d@test.com", i)
		// two racing signups per email: exactly one must win
		for j := 0; j < 2; j++ {
			go func() {
				defer wg.Done()
				_, _ = r.Signup("_test_empty", email)
			}()
		}
	}
	wg.Wait()

	all := r.List()
	assert.Len(t, all["_test_empty"].Participants, n)
	assertNoDuplicates(t, all)
}

func TestNewRegistryRejectsBadSeed(t *testing.T) {
	_, err := activities.NewRegistry([]models.Activity{{Name: "A"}, {Name: "A"}})
	assert.Error(t, err)

	_, err = activities.NewRegistry([]models.Activity{{Name: "A", Participants: []string{"x@test.com", "x@test.com"}}})
	assert.Error(t, err)
}

func TestNewRegistryCopiesSeed(t *testing.T) {
	seed := test.SampleActivities()
	r, err := activities.NewRegistry(seed)
	require.NoError(t, err)

	seed[0].Participants[0] = "mallory@mergington.edu"
	a, _ := r.Get("Chess Club")
	assert.Equal(t, "michael@mergington.edu", a.Participants[0])
}
