package domain

import "context"

// TeeShirtSizeNotSpecified is the default tee shirt size for new profiles.
const TeeShirtSizeNotSpecified = "NOT_SPECIFIED"

// TeeShirtSizes lists the accepted tee shirt size values.
var TeeShirtSizes = []string{
	TeeShirtSizeNotSpecified,
	"XS_M", "XS_W",
	"S_M", "S_W",
	"M_M", "M_W",
	"L_M", "L_W",
	"XL_M", "XL_W",
	"XXL_M", "XXL_W",
	"XXXL_M", "XXXL_W",
}

// IsValidTeeShirtSize reports whether s is one of the accepted tee shirt sizes.
func IsValidTeeShirtSize(s string) bool {
	for _, v := range TeeShirtSizes {
		if v == s {
			return true
		}
	}
	return false
}

// Profile represents a user profile, keyed by the account id of the
// authenticated identity. Created lazily on first access.
// swagger:model Profile
type Profile struct {
	ID                 string   `json:"id"`
	DisplayName        string   `json:"display_name"`
	MainEmail          string   `json:"main_email"`
	TeeShirtSize       string   `json:"tee_shirt_size"`
	ConferenceIDs      []string `json:"conference_ids"`
	WishlistSessionIDs []string `json:"wishlist_session_ids"`
}

// ProfileUpdate carries the user-editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	DisplayName  *string `json:"display_name"`
	TeeShirtSize *string `json:"tee_shirt_size"`
}

// ProfileRepository defines the interface for profile storage, including the
// wishlist list and the registration transaction spanning profile + conference.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	AddWishlistSession(ctx context.Context, profileID, sessionID string) error
	RemoveWishlistSession(ctx context.Context, profileID, sessionID string) error
	// Register atomically appends the conference to the profile's attend list
	// and decrements the conference's seats. Returns ErrConflict (wrapped) when
	// already registered or no seats remain.
	Register(ctx context.Context, profileID, conferenceID string) error
	// Unregister atomically removes the conference from the attend list and
	// increments seats. Returns false without error when not registered.
	Unregister(ctx context.Context, profileID, conferenceID string) (bool, error)
	// GetDisplayNames returns a map of profile id to display name for the given ids.
	GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}

// ProfileService defines the business logic for the profile, wishlist, and
// registration workflows.
type ProfileService interface {
	GetOrCreate(ctx context.Context, identity *Identity) (*Profile, error)
	Update(ctx context.Context, identity *Identity, in *ProfileUpdate) (*Profile, error)
	AddToWishlist(ctx context.Context, identity *Identity, sessionID string) (*Session, error)
	RemoveFromWishlist(ctx context.Context, identity *Identity, sessionID string) (*Session, error)
	ListWishlist(ctx context.Context, identity *Identity) ([]*Session, error)
	Register(ctx context.Context, identity *Identity, conferenceID string) (bool, error)
	Unregister(ctx context.Context, identity *Identity, conferenceID string) (bool, error)
	ListAttending(ctx context.Context, identity *Identity) ([]*ConferenceWithOrganizer, error)
}
