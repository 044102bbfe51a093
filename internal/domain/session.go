package domain

import (
	"context"
	"time"
)

// Session represents a conference session or talk. StartTime carries only a
// time of day (its date component is zero) so sessions can be ordered within a day.
// swagger:model Session
type Session struct {
	ID            string     `json:"id"`
	ConferenceID  string     `json:"conference_id"`
	Name          string     `json:"name"`
	Highlights    []string   `json:"highlights"`
	Speaker       string     `json:"speaker"`
	Duration      int        `json:"duration"`
	TypeOfSession string     `json:"type_of_session"`
	Date          *time.Time `json:"date"`
	StartTime     *time.Time `json:"start_time"`
	OrganizerID   string     `json:"organizer_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SessionInput carries the fields accepted when creating a session.
// Date is a YYYY-MM-DD string, StartTime an HH:MM string; missing defaultable
// fields are filled by the service.
type SessionInput struct {
	Name          string   `json:"name"`
	Highlights    []string `json:"highlights"`
	Speaker       string   `json:"speaker"`
	Duration      int      `json:"duration"`
	TypeOfSession string   `json:"type_of_session"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListBySpeakerAndConference(ctx context.Context, speaker, conferenceID string) ([]*Session, error)
	CountBySpeakerAndConference(ctx context.Context, speaker, conferenceID string) (int, error)
	// ListPast returns sessions dated strictly before the current calendar day;
	// ListToday returns sessions dated exactly today.
	ListPast(ctx context.Context) ([]*Session, error)
	ListToday(ctx context.Context) ([]*Session, error)
	// ListStartingBefore returns sessions with a non-null start time at or
	// before the given hour (24h clock).
	ListStartingBefore(ctx context.Context, hour int) ([]*Session, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Session, error)
}

// SessionService defines the business logic for the session workflow.
type SessionService interface {
	Create(ctx context.Context, identity *Identity, conferenceID string, in *SessionInput) (*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListPast(ctx context.Context) ([]*Session, error)
	ListToday(ctx context.Context) ([]*Session, error)
	// ListNonWorkshopBefore returns sessions starting at or before the given
	// hour, excluding workshop sessions.
	ListNonWorkshopBefore(ctx context.Context, hour int) ([]*Session, error)
}
