package domain

import "context"

// Speaker represents a speaker record. DisplayName is the primary key: the
// speaker directory is public and speakers are identified by name.
// swagger:model Speaker
type Speaker struct {
	DisplayName string   `json:"display_name"`
	MainEmail   string   `json:"main_email"`
	Bio         string   `json:"bio"`
	SessionIDs  []string `json:"session_ids"`
}

// SpeakerSummary is the minimal public projection of a speaker (name + email).
type SpeakerSummary struct {
	DisplayName string `json:"display_name"`
	MainEmail   string `json:"main_email"`
}

// SpeakerInput carries the fields accepted when registering or updating a speaker.
type SpeakerInput struct {
	DisplayName string `json:"display_name"`
	MainEmail   string `json:"main_email"`
	Bio         string `json:"bio"`
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	GetByName(ctx context.Context, displayName string) (*Speaker, error)
	Create(ctx context.Context, speaker *Speaker) error
	Update(ctx context.Context, speaker *Speaker) error
	// AppendSessionID appends a session id to the speaker's session list.
	AppendSessionID(ctx context.Context, displayName, sessionID string) error
	// ListAll returns all speakers ordered by display name.
	ListAll(ctx context.Context) ([]*Speaker, error)
}

// SpeakerService defines the business logic for the speaker workflow.
// Speaker endpoints are unauthenticated by design (public directory data).
type SpeakerService interface {
	GetOrCreate(ctx context.Context, in *SpeakerInput) (*Speaker, error)
	ListAll(ctx context.Context) ([]*SpeakerSummary, error)
}
