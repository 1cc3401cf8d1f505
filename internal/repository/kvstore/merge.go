package kvstore

import "eventease/internal/domain"

// Merge-by-ownership: the write strategy for shared collections. The
// caller's rows replace every row it already owned in the global blob;
// rows owned by other users pass through untouched. Rows with an empty
// userId are owned by no one and also pass through.

// MergeEventsByOwner removes every event owned by userID from global,
// stamps the caller's events with userID, and appends them.
func MergeEventsByOwner(global, mine []domain.Event, userID string) []domain.Event {
	merged := make([]domain.Event, 0, len(global)+len(mine))
	for _, e := range global {
		if e.UserID != userID {
			merged = append(merged, e)
		}
	}
	for _, e := range mine {
		e.UserID = userID
		merged = append(merged, e)
	}
	return merged
}

// MergeParticipantsByOwner is the participant counterpart of
// MergeEventsByOwner.
func MergeParticipantsByOwner(global, mine []domain.Participant, userID string) []domain.Participant {
	merged := make([]domain.Participant, 0, len(global)+len(mine))
	for _, p := range global {
		if p.UserID != userID {
			merged = append(merged, p)
		}
	}
	for _, p := range mine {
		p.UserID = userID
		merged = append(merged, p)
	}
	return merged
}

// EventsOwnedBy returns the events tagged with userID. Rows lacking a
// userId belong to no authenticated user and are never returned.
func EventsOwnedBy(all []domain.Event, userID string) []domain.Event {
	owned := make([]domain.Event, 0)
	if userID == "" {
		return owned
	}
	for _, e := range all {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return owned
}

// ParticipantsOwnedBy is the participant counterpart of EventsOwnedBy.
func ParticipantsOwnedBy(all []domain.Participant, userID string) []domain.Participant {
	owned := make([]domain.Participant, 0)
	if userID == "" {
		return owned
	}
	for _, p := range all {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned
}
