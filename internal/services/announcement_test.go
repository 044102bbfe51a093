package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func TestAnnouncementService_RecomputeAnnouncement(t *testing.T) {
	confRepo := newFakeConferenceRepo()
	cache := newFakeCache()
	svc := NewAnnouncementService(confRepo, newFakeSessionRepo(), cache, time.Second)
	ctx := context.Background()

	confRepo.nearlySoldOut = []*domain.Conference{
		{ID: "c1", Name: "GopherCon"},
		{ID: "c2", Name: "RustConf"},
	}
	message, err := svc.RecomputeAnnouncement(ctx)
	require.NoError(t, err)
	want := "Last chance to attend! The following conferences are nearly sold out: GopherCon, RustConf"
	assert.Equal(t, want, message)

	got, err := svc.Announcement(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// No nearly-sold-out conferences clears the cached announcement.
	confRepo.nearlySoldOut = nil
	message, err = svc.RecomputeAnnouncement(ctx)
	require.NoError(t, err)
	assert.Empty(t, message)

	got, err = svc.Announcement(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, cache.deleted, "RECENT_ANNOUNCEMENTS")
}

func TestAnnouncementService_RecomputeFeaturedSpeaker(t *testing.T) {
	sessRepo := newFakeSessionRepo()
	cache := newFakeCache()
	svc := NewAnnouncementService(newFakeConferenceRepo(), sessRepo, cache, time.Second)
	ctx := context.Background()

	sessRepo.sessions = []*domain.Session{
		{ID: "s1", ConferenceID: "conf-1", Speaker: "Rob", Name: "Concurrency"},
		{ID: "s2", ConferenceID: "conf-1", Speaker: "Rob", Name: "Generics"},
		{ID: "s3", ConferenceID: "conf-2", Speaker: "Rob", Name: "Elsewhere"},
	}

	message, err := svc.RecomputeFeaturedSpeaker(ctx, "Rob", "conf-1")
	require.NoError(t, err)
	assert.Equal(t, "Featured Speaker Rob is presenting Concurrency, Generics", message)

	got, err := svc.FeaturedSpeaker(ctx)
	require.NoError(t, err)
	assert.Equal(t, message, got)

	// A speaker with no sessions leaves the cached message alone.
	empty, err := svc.RecomputeFeaturedSpeaker(ctx, "Nobody", "conf-1")
	require.NoError(t, err)
	assert.Empty(t, empty)
	got, err = svc.FeaturedSpeaker(ctx)
	require.NoError(t, err)
	assert.Equal(t, message, got)
}
