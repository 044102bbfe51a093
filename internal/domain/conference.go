package domain

import (
	"context"
	"time"
)

// Conference represents a conference record owned by an organizer profile.
// swagger:model Conference
type Conference struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	OrganizerID    string     `json:"organizer_id"`
	Topics         []string   `json:"topics"`
	City           string     `json:"city"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Month          int        `json:"month"`
	MaxAttendees   int        `json:"max_attendees"`
	SeatsAvailable int        `json:"seats_available"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ConferenceWithOrganizer bundles a conference with its organizer's display name.
type ConferenceWithOrganizer struct {
	*Conference
	OrganizerDisplayName string `json:"organizer_display_name"`
}

// QueryFilter is one raw (field, operator, value) triple as submitted by the
// client. Fields and operators are validated against whitelists by the service.
type QueryFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// ConferenceFilter is a validated filter ready for the repository: a column
// name, a SQL comparison operator, and a typed value.
type ConferenceFilter struct {
	Column string
	Op     string
	Value  any
}

// ConferenceInput carries the fields accepted when creating a conference.
// Dates are YYYY-MM-DD strings; missing defaultable fields are filled by the service.
type ConferenceInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// ConferenceUpdate carries the fields accepted when updating a conference.
// Nil means "leave unchanged"; a present empty value is written as-is.
type ConferenceUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Topics       []string `json:"topics"`
	City         *string  `json:"city"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

// ConferenceRepository defines the interface for conference storage.
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	Update(ctx context.Context, conf *Conference) error
	// Query runs the validated filters. When orderColumn is non-empty the
	// primary sort is that column, secondary sort is name; otherwise name only.
	Query(ctx context.Context, filters []ConferenceFilter, orderColumn string) ([]*Conference, error)
	// ListNearlySoldOut returns conferences with 0 < seats_available <= limit,
	// projected to id and name.
	ListNearlySoldOut(ctx context.Context, limit int) ([]*Conference, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Conference, error)
}

// ConferenceService defines the business logic for the conference workflow.
type ConferenceService interface {
	Create(ctx context.Context, identity *Identity, in *ConferenceInput) (*Conference, error)
	Update(ctx context.Context, identity *Identity, conferenceID string, in *ConferenceUpdate) (*ConferenceWithOrganizer, error)
	Get(ctx context.Context, conferenceID string) (*ConferenceWithOrganizer, error)
	ListCreatedBy(ctx context.Context, identity *Identity) ([]*ConferenceWithOrganizer, error)
	Query(ctx context.Context, filters []QueryFilter) ([]*ConferenceWithOrganizer, error)
}
