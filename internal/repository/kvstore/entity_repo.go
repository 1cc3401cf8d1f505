package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eventease/internal/domain"
	"eventease/internal/kv"
)

type entityRepository struct {
	store kv.Store

	// shared stores all tenants' rows under the two global keys and
	// isolates them by userId; otherwise each tenant gets namespaced
	// keys and writes are verbatim replacements.
	shared bool
}

// NewEntityRepository returns an EntityRepository over namespaced
// per-user keys ("events:<userId>" / "participants:<userId>").
func NewEntityRepository(store kv.Store) domain.EntityRepository {
	return &entityRepository{store: store}
}

// NewSharedEntityRepository returns an EntityRepository over the two
// global collection keys, using merge-by-ownership writes. Writes are
// last-write-wins per owner: the merge bases itself on the blob read
// just before the write, so two overlapping writes by the same user
// from different sessions can lose one of them. There is no CAS or
// retry; that matches the contract the dashboard was built against.
func NewSharedEntityRepository(store kv.Store) domain.EntityRepository {
	return &entityRepository{store: store, shared: true}
}

func (r *entityRepository) readEvents(ctx context.Context, key string) ([]domain.Event, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return []domain.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	var events []domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return events, nil
}

func (r *entityRepository) readParticipants(ctx context.Context, key string) ([]domain.Participant, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return []domain.Participant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	var participants []domain.Participant
	if err := json.Unmarshal(raw, &participants); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return participants, nil
}

func (r *entityRepository) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Load returns the caller's view of both collections. A key that has
// never been written reads as an empty slice; "no data yet" is a valid
// state, not an error.
func (r *entityRepository) Load(ctx context.Context, userID string) (*domain.Collections, error) {
	if r.shared {
		allEvents, err := r.readEvents(ctx, eventsKey)
		if err != nil {
			return nil, err
		}
		allParticipants, err := r.readParticipants(ctx, participantsKey)
		if err != nil {
			return nil, err
		}
		return &domain.Collections{
			Events:       EventsOwnedBy(allEvents, userID),
			Participants: ParticipantsOwnedBy(allParticipants, userID),
		}, nil
	}

	events, err := r.readEvents(ctx, namespacedKey(eventsKey, userID))
	if err != nil {
		return nil, err
	}
	participants, err := r.readParticipants(ctx, namespacedKey(participantsKey, userID))
	if err != nil {
		return nil, err
	}
	return &domain.Collections{Events: events, Participants: participants}, nil
}

// Save persists the provided collections. A nil slice means the caller
// did not touch that collection and it is left as stored; an empty
// non-nil slice is a deliberate overwrite.
//
// In shared mode each collection write re-reads the global blob, drops
// the caller's previous contribution, and appends the new one, so rows
// owned by other users are never rewritten from this caller's cache.
func (r *entityRepository) Save(ctx context.Context, userID string, events []domain.Event, participants []domain.Participant) error {
	if r.shared {
		if events != nil {
			global, err := r.readEvents(ctx, eventsKey)
			if err != nil {
				return err
			}
			if err := r.write(ctx, eventsKey, MergeEventsByOwner(global, events, userID)); err != nil {
				return err
			}
		}
		if participants != nil {
			global, err := r.readParticipants(ctx, participantsKey)
			if err != nil {
				return err
			}
			if err := r.write(ctx, participantsKey, MergeParticipantsByOwner(global, participants, userID)); err != nil {
				return err
			}
		}
		return nil
	}

	if events != nil {
		if err := r.write(ctx, namespacedKey(eventsKey, userID), events); err != nil {
			return err
		}
	}
	if participants != nil {
		if err := r.write(ctx, namespacedKey(participantsKey, userID), participants); err != nil {
			return err
		}
	}
	return nil
}
