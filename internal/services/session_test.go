package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func sessionFixture(t *testing.T) (*fakeSessionRepo, *fakeConferenceRepo, *fakeSpeakerRepo, *fakeTaskQueue, domain.SessionService) {
	t.Helper()
	sessRepo := newFakeSessionRepo()
	confRepo := newFakeConferenceRepo()
	speakerRepo := newFakeSpeakerRepo()
	queue := &fakeTaskQueue{}
	confRepo.byID["conf-1"] = &domain.Conference{ID: "conf-1", Name: "GopherCon", OrganizerID: "user-1"}
	speakerRepo.byName["Rob"] = &domain.Speaker{DisplayName: "Rob", SessionIDs: []string{}}
	svc := NewSessionService(sessRepo, confRepo, speakerRepo, queue, time.Second)
	return sessRepo, confRepo, speakerRepo, queue, svc
}

func TestSessionService_Create(t *testing.T) {
	_, _, speakerRepo, _, svc := sessionFixture(t)

	sess, err := svc.Create(context.Background(), testIdentity(), "conf-1", &domain.SessionInput{
		Name:          "Concurrency Patterns",
		Speaker:       "Rob",
		TypeOfSession: "lecture",
		Date:          "2026-06-15",
		StartTime:     "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "conf-1", sess.ConferenceID)
	assert.Equal(t, []string{"Default", "Highlights"}, sess.Highlights)
	require.NotNil(t, sess.StartTime)
	assert.Equal(t, 9, sess.StartTime.Hour())
	assert.Equal(t, 30, sess.StartTime.Minute())

	// The session id lands on the speaker's list.
	assert.Equal(t, []string{sess.ID}, speakerRepo.byName["Rob"].SessionIDs)

	t.Run("start time with seconds", func(t *testing.T) {
		sess, err := svc.Create(context.Background(), testIdentity(), "conf-1", &domain.SessionInput{
			Name:      "Lightning Talks",
			StartTime: "14:45:00",
		})
		require.NoError(t, err)
		require.NotNil(t, sess.StartTime)
		assert.Equal(t, 14, sess.StartTime.Hour())
		assert.Equal(t, 45, sess.StartTime.Minute())
	})
}

func TestSessionService_Create_Errors(t *testing.T) {
	_, _, _, _, svc := sessionFixture(t)
	ctx := context.Background()

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := svc.Create(ctx, nil, "conf-1", &domain.SessionInput{Name: "s"})
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("unknown conference", func(t *testing.T) {
		_, err := svc.Create(ctx, testIdentity(), "conf-missing", &domain.SessionInput{Name: "s"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("not organizer", func(t *testing.T) {
		other := &domain.Identity{UserID: "user-2"}
		_, err := svc.Create(ctx, other, "conf-1", &domain.SessionInput{Name: "s"})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
	t.Run("unknown speaker", func(t *testing.T) {
		_, err := svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{Name: "s", Speaker: "Nobody"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
	t.Run("bad start time", func(t *testing.T) {
		_, err := svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{Name: "s", StartTime: "9am"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSessionService_Create_FeaturedSpeakerTask(t *testing.T) {
	_, _, _, queue, svc := sessionFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{Name: "First", Speaker: "Rob"})
	require.NoError(t, err)
	assert.Empty(t, queue.byName(domain.TaskSetFeaturedSpeaker), "one session must not feature the speaker")

	_, err = svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{Name: "Second", Speaker: "Rob"})
	require.NoError(t, err)
	featured := queue.byName(domain.TaskSetFeaturedSpeaker)
	require.Len(t, featured, 1)
	assert.Equal(t, "Rob", featured[0].Params["speaker"])
	assert.Equal(t, "conf-1", featured[0].Params["conference_id"])

	// The task fires once per crossing: a third session by the same speaker
	// must not enqueue again.
	_, err = svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{Name: "Third", Speaker: "Rob"})
	require.NoError(t, err)
	assert.Len(t, queue.byName(domain.TaskSetFeaturedSpeaker), 1)

	// Sessions without a speaker never enqueue.
	_, err = svc.Create(ctx, testIdentity(), "conf-1", &domain.SessionInput{Name: "Fourth"})
	require.NoError(t, err)
	assert.Len(t, queue.byName(domain.TaskSetFeaturedSpeaker), 1)
}

func TestSessionService_ListByConference(t *testing.T) {
	sessRepo, _, _, _, svc := sessionFixture(t)
	sessRepo.sessions = []*domain.Session{
		{ID: "s1", ConferenceID: "conf-1", Name: "A", TypeOfSession: "lecture"},
		{ID: "s2", ConferenceID: "conf-1", Name: "B", TypeOfSession: "workshop"},
		{ID: "s3", ConferenceID: "conf-2", Name: "C"},
	}

	all, err := svc.ListByConference(context.Background(), "conf-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	workshops, err := svc.ListByConferenceAndType(context.Background(), "conf-1", "workshop")
	require.NoError(t, err)
	require.Len(t, workshops, 1)
	assert.Equal(t, "B", workshops[0].Name)

	_, err = svc.ListByConference(context.Background(), "conf-missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionService_ListNonWorkshopBefore(t *testing.T) {
	sessRepo, _, _, _, svc := sessionFixture(t)
	sessRepo.early = []*domain.Session{
		{ID: "s1", Name: "Talk", TypeOfSession: "lecture"},
		{ID: "s2", Name: "Hands-on", TypeOfSession: "Workshop"},
		{ID: "s3", Name: "Keynote", TypeOfSession: "keynote"},
	}

	out, err := svc.ListNonWorkshopBefore(context.Background(), 19)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Talk", out[0].Name)
	assert.Equal(t, "Keynote", out[1].Name)

	_, err = svc.ListNonWorkshopBefore(context.Background(), 24)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
