package domain

import "context"

// Cache is a global key to string store with explicit set/get/delete.
// Get returns an empty string when the key is absent.
type Cache interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// AnnouncementService maintains the cached "nearly sold out" announcement and
// the featured speaker message.
type AnnouncementService interface {
	// RecomputeAnnouncement queries nearly-sold-out conferences and refreshes
	// the cached announcement, deleting it when no conference qualifies.
	// Returns the announcement that was stored ("" when cleared).
	RecomputeAnnouncement(ctx context.Context) (string, error)
	// Announcement returns the cached announcement, or "" when absent.
	Announcement(ctx context.Context) (string, error)
	// RecomputeFeaturedSpeaker rebuilds the featured speaker message from the
	// speaker's sessions in the given conference and stores it unconditionally.
	RecomputeFeaturedSpeaker(ctx context.Context, speaker, conferenceID string) (string, error)
	// FeaturedSpeaker returns the cached featured speaker message, or "" when absent.
	FeaturedSpeaker(ctx context.Context) (string, error)
}
