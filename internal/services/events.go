package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"eventease/internal/domain"
)

type eventService struct {
	entities domain.EntityRepository
	mailer   domain.Mailer
	logger   *slog.Logger
}

// NewEventService creates an EventService over the entity store. The
// mailer is used for registration confirmations; pass a noop mailer to
// disable them.
func NewEventService(entities domain.EntityRepository, mailer domain.Mailer, logger *slog.Logger) domain.EventService {
	return &eventService{
		entities: entities,
		mailer:   mailer,
		logger:   logger,
	}
}

func (s *eventService) Load(ctx context.Context, userID string) (*domain.Collections, error) {
	return s.entities.Load(ctx, userID)
}

// Sync persists the caller's collections as provided. A failed write is
// logged and surfaced; nothing is retried and nothing is rolled back.
func (s *eventService) Sync(ctx context.Context, userID string, events []domain.Event, participants []domain.Participant) error {
	if err := s.entities.Save(ctx, userID, events, participants); err != nil {
		s.logger.ErrorContext(ctx, "entity sync failed", "userId", userID, "err", err)
		return err
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, userID string, event *domain.Event) error {
	cols, err := s.entities.Load(ctx, userID)
	if err != nil {
		return err
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	events := append(cols.Events, *event)
	return s.Sync(ctx, userID, events, nil)
}

func (s *eventService) UpdateEvent(ctx context.Context, userID string, event *domain.Event) error {
	cols, err := s.entities.Load(ctx, userID)
	if err != nil {
		return err
	}
	for i, e := range cols.Events {
		if e.ID == event.ID {
			event.UserID = e.UserID
			cols.Events[i] = *event
			return s.Sync(ctx, userID, cols.Events, nil)
		}
	}
	return domain.ErrEventNotFound
}

// DeleteEvent removes the event only. Participants referencing it are
// left in place; the dashboard never cascaded deletes.
func (s *eventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	cols, err := s.entities.Load(ctx, userID)
	if err != nil {
		return err
	}
	kept := make([]domain.Event, 0, len(cols.Events))
	for _, e := range cols.Events {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(cols.Events) {
		return domain.ErrEventNotFound
	}
	return s.Sync(ctx, userID, kept, nil)
}

func (s *eventService) RegisterParticipant(ctx context.Context, userID string, p *domain.Participant) error {
	cols, err := s.entities.Load(ctx, userID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Status = domain.StatusRegistered
	participants := append(cols.Participants, *p)
	if err := s.Sync(ctx, userID, nil, participants); err != nil {
		return err
	}

	if p.Email != "" {
		s.sendConfirmation(ctx, userID, *p, cols.Events)
	}
	return nil
}

// sendConfirmation is fire-and-forget: a send failure is logged and the
// registration stands.
func (s *eventService) sendConfirmation(ctx context.Context, userID string, p domain.Participant, events []domain.Event) {
	title := p.EventID
	for _, e := range events {
		if e.ID == p.EventID {
			title = e.Title
			break
		}
	}
	subject := fmt.Sprintf("You're registered for %s", title)
	text := fmt.Sprintf("Hi %s,\n\nYour registration for %s is confirmed.\n", p.Name, title)
	go func() {
		if err := s.mailer.Send(p.Email, subject, "", text); err != nil {
			s.logger.Error("confirmation email failed", "userId", userID, "participantId", p.ID, "err", err)
		}
	}()
}

// CheckIn transitions a participant to CHECKED_IN. Checking in an
// already checked-in participant is a no-op, not an error.
func (s *eventService) CheckIn(ctx context.Context, userID, participantID string) (*domain.Participant, error) {
	cols, err := s.entities.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, p := range cols.Participants {
		if p.ID != participantID {
			continue
		}
		if p.Status == domain.StatusCheckedIn {
			found := p
			return &found, nil
		}
		cols.Participants[i].Status = domain.StatusCheckedIn
		if err := s.Sync(ctx, userID, nil, cols.Participants); err != nil {
			return nil, err
		}
		found := cols.Participants[i]
		return &found, nil
	}
	return nil, domain.ErrParticipantNotFound
}
