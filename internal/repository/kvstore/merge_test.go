package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventease/internal/domain"
)

func TestMergeEventsByOwner_ReplacesOnlyOwnRows(t *testing.T) {
	global := []domain.Event{
		{ID: "1", Title: "Gala", UserID: "A"},
		{ID: "2", Title: "Expo", UserID: "B"},
		{ID: "3", Title: "Legacy", UserID: ""},
	}
	mine := []domain.Event{
		{ID: "1", Title: "Gala (renamed)"},
		{ID: "4", Title: "Launch"},
	}

	merged := MergeEventsByOwner(global, mine, "A")

	assert.Len(t, merged, 4)
	// B's row and the ownerless row survive untouched.
	assert.Contains(t, merged, domain.Event{ID: "2", Title: "Expo", UserID: "B"})
	assert.Contains(t, merged, domain.Event{ID: "3", Title: "Legacy"})
	// A's contribution is fully replaced and stamped.
	assert.Contains(t, merged, domain.Event{ID: "1", Title: "Gala (renamed)", UserID: "A"})
	assert.Contains(t, merged, domain.Event{ID: "4", Title: "Launch", UserID: "A"})
	assert.NotContains(t, merged, domain.Event{ID: "1", Title: "Gala", UserID: "A"})
}

func TestMergeEventsByOwner_EmptyMineRemovesContribution(t *testing.T) {
	global := []domain.Event{
		{ID: "1", UserID: "A"},
		{ID: "2", UserID: "B"},
	}
	merged := MergeEventsByOwner(global, []domain.Event{}, "A")
	assert.Equal(t, []domain.Event{{ID: "2", UserID: "B"}}, merged)
}

func TestMergeParticipantsByOwner_StampsOwner(t *testing.T) {
	mine := []domain.Participant{{ID: "101", EventID: "1", Name: "Bob", Status: domain.StatusRegistered}}
	merged := MergeParticipantsByOwner(nil, mine, "A")
	assert.Len(t, merged, 1)
	assert.Equal(t, "A", merged[0].UserID)
}

func TestEventsOwnedBy_ExcludesOtherAndOwnerlessRows(t *testing.T) {
	all := []domain.Event{
		{ID: "1", UserID: "A"},
		{ID: "2", UserID: "B"},
		{ID: "3"},
	}
	assert.Equal(t, []domain.Event{{ID: "1", UserID: "A"}}, EventsOwnedBy(all, "A"))
}

func TestEventsOwnedBy_EmptyUserMatchesNothing(t *testing.T) {
	// Rows without a userId are orphaned: even a caller with no user id
	// does not see them.
	all := []domain.Event{{ID: "3"}}
	assert.Empty(t, EventsOwnedBy(all, ""))
}

func TestParticipantsOwnedBy(t *testing.T) {
	all := []domain.Participant{
		{ID: "101", UserID: "A"},
		{ID: "102", UserID: "B"},
		{ID: "103"},
	}
	assert.Equal(t, []domain.Participant{{ID: "102", UserID: "B"}}, ParticipantsOwnedBy(all, "B"))
	assert.Empty(t, ParticipantsOwnedBy(all, ""))
}
