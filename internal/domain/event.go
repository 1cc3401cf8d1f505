package domain

import (
	"context"
	"errors"
)

// Sentinel errors for entity operations.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Event represents a managed event. Date and Capacity are free-form
// strings, matching what the dashboard stores.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Capacity string `json:"capacity"`
	UserID   string `json:"userId,omitempty"`
}

// Participant statuses. Check-in is one-directional: REGISTERED may
// become CHECKED_IN, never the reverse.
const (
	StatusRegistered = "REGISTERED"
	StatusCheckedIn  = "CHECKED_IN"
)

// Participant represents a person registered for an event. EventID
// references Event.ID but is not validated against it; deleting an
// event leaves its participants behind.
type Participant struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Dept    string `json:"dept"`
	Status  string `json:"status"`
	UserID  string `json:"userId,omitempty"`
}

// Collections bundles the two entity collections as they are loaded and
// stored together.
type Collections struct {
	Events       []Event       `json:"events"`
	Participants []Participant `json:"participants"`
}

// EntityRepository defines whole-collection storage for events and
// participants. Load returns empty slices when nothing has been stored
// yet. Save writes only the collections that are non-nil; a nil slice
// means "not provided", an empty non-nil slice is a valid overwrite.
type EntityRepository interface {
	Load(ctx context.Context, userID string) (*Collections, error)
	Save(ctx context.Context, userID string, events []Event, participants []Participant) error
}

// EventService defines dashboard operations over the entity store.
type EventService interface {
	Load(ctx context.Context, userID string) (*Collections, error)
	Sync(ctx context.Context, userID string, events []Event, participants []Participant) error
	CreateEvent(ctx context.Context, userID string, event *Event) error
	UpdateEvent(ctx context.Context, userID string, event *Event) error
	DeleteEvent(ctx context.Context, userID, eventID string) error
	RegisterParticipant(ctx context.Context, userID string, p *Participant) error
	CheckIn(ctx context.Context, userID, participantID string) (*Participant, error)
}

// Mailer sends transactional email such as registration confirmations.
type Mailer interface {
	Send(to, subject, html, text string) error
}
