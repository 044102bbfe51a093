package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func TestConferenceService_Create_Defaults(t *testing.T) {
	confRepo := newFakeConferenceRepo()
	profileRepo := newFakeProfileRepo()
	queue := &fakeTaskQueue{}
	svc := NewConferenceService(confRepo, profileRepo, queue, time.Second)

	conf, err := svc.Create(context.Background(), testIdentity(), &domain.ConferenceInput{Name: "GopherCon"})
	require.NoError(t, err)

	assert.Equal(t, "Default City", conf.City)
	assert.Equal(t, []string{"Default", "Topic"}, conf.Topics)
	assert.Equal(t, 0, conf.Month)
	assert.Equal(t, 0, conf.SeatsAvailable)
	assert.Equal(t, "user-1", conf.OrganizerID)

	// The organizer profile is created lazily.
	profile, err := profileRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TeeShirtSizeNotSpecified, profile.TeeShirtSize)

	emails := queue.byName(domain.TaskSendConfirmationEmail)
	require.Len(t, emails, 1)
	assert.Equal(t, "user@example.com", emails[0].Params["email"])
	assert.Equal(t, "GopherCon", emails[0].Params["conference_name"])
	assert.NotEmpty(t, emails[0].Params["conference_info"])
}

func TestConferenceService_Create_DerivesMonthAndSeats(t *testing.T) {
	confRepo := newFakeConferenceRepo()
	svc := NewConferenceService(confRepo, newFakeProfileRepo(), &fakeTaskQueue{}, time.Second)

	conf, err := svc.Create(context.Background(), testIdentity(), &domain.ConferenceInput{
		Name:         "GopherCon",
		City:         "Denver",
		Topics:       []string{"Go"},
		StartDate:    "2026-06-15",
		EndDate:      "2026-06-17",
		MaxAttendees: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, conf.Month)
	assert.Equal(t, 100, conf.SeatsAvailable)
	assert.Equal(t, "Denver", conf.City)
	require.NotNil(t, conf.StartDate)
	assert.Equal(t, "2026-06-15", conf.StartDate.Format("2006-01-02"))
}

func TestConferenceService_Create_Invalid(t *testing.T) {
	svc := NewConferenceService(newFakeConferenceRepo(), newFakeProfileRepo(), &fakeTaskQueue{}, time.Second)

	tests := []struct {
		name string
		in   *domain.ConferenceInput
	}{
		{"missing name", &domain.ConferenceInput{}},
		{"bad date", &domain.ConferenceInput{Name: "c", StartDate: "June 2026"}},
		{"negative seats", &domain.ConferenceInput{Name: "c", MaxAttendees: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), testIdentity(), tt.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := svc.Create(context.Background(), nil, &domain.ConferenceInput{Name: "c"})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestConferenceService_Update(t *testing.T) {
	confRepo := newFakeConferenceRepo()
	profileRepo := newFakeProfileRepo()
	queue := &fakeTaskQueue{}
	svc := NewConferenceService(confRepo, profileRepo, queue, time.Second)

	conf, err := svc.Create(context.Background(), testIdentity(), &domain.ConferenceInput{
		Name:      "GopherCon",
		StartDate: "2026-06-15",
	})
	require.NoError(t, err)
	require.Equal(t, 6, conf.Month)

	t.Run("not owner", func(t *testing.T) {
		other := &domain.Identity{UserID: "user-2", Email: "other@example.com"}
		_, err := svc.Update(context.Background(), other, conf.ID, &domain.ConferenceUpdate{})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown conference", func(t *testing.T) {
		_, err := svc.Update(context.Background(), testIdentity(), "conf-missing", &domain.ConferenceUpdate{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("merges present fields and rederives month", func(t *testing.T) {
		city := "Berlin"
		start := "2026-09-01"
		updated, err := svc.Update(context.Background(), testIdentity(), conf.ID, &domain.ConferenceUpdate{
			City:      &city,
			StartDate: &start,
		})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", updated.City)
		assert.Equal(t, 9, updated.Month)
		assert.Equal(t, "GopherCon", updated.Name)
	})

	t.Run("clearing start date clears month", func(t *testing.T) {
		empty := ""
		updated, err := svc.Update(context.Background(), testIdentity(), conf.ID, &domain.ConferenceUpdate{
			StartDate: &empty,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.StartDate)
		assert.Equal(t, 0, updated.Month)
	})
}

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name      string
		filters   []domain.QueryFilter
		wantOrder string
		wantErr   bool
	}{
		{
			name:      "no filters",
			filters:   nil,
			wantOrder: "",
		},
		{
			name: "equality only",
			filters: []domain.QueryFilter{
				{Field: "CITY", Operator: "EQ", Value: "London"},
				{Field: "TOPIC", Operator: "EQ", Value: "Go"},
			},
			wantOrder: "",
		},
		{
			name: "single inequality sets order",
			filters: []domain.QueryFilter{
				{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"},
				{Field: "CITY", Operator: "EQ", Value: "London"},
			},
			wantOrder: "max_attendees",
		},
		{
			name: "two inequalities on one field",
			filters: []domain.QueryFilter{
				{Field: "MONTH", Operator: "GT", Value: "5"},
				{Field: "MONTH", Operator: "LT", Value: "9"},
			},
			wantOrder: "month",
		},
		{
			name: "inequalities on two fields",
			filters: []domain.QueryFilter{
				{Field: "MONTH", Operator: "GT", Value: "5"},
				{Field: "MAX_ATTENDEES", Operator: "LT", Value: "100"},
			},
			wantErr: true,
		},
		{
			name:    "unknown field",
			filters: []domain.QueryFilter{{Field: "VENUE", Operator: "EQ", Value: "x"}},
			wantErr: true,
		},
		{
			name:    "unknown operator",
			filters: []domain.QueryFilter{{Field: "CITY", Operator: "LIKE", Value: "x"}},
			wantErr: true,
		},
		{
			name:    "month needs an integer",
			filters: []domain.QueryFilter{{Field: "MONTH", Operator: "EQ", Value: "June"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, order, err := validateFilters(tt.filters)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, order)
			assert.Len(t, validated, len(tt.filters))
		})
	}
}

func TestValidateFilters_TypesValues(t *testing.T) {
	validated, _, err := validateFilters([]domain.QueryFilter{
		{Field: "MONTH", Operator: "EQ", Value: "6"},
		{Field: "CITY", Operator: "NE", Value: "London"},
	})
	require.NoError(t, err)
	require.Len(t, validated, 2)
	assert.Equal(t, domain.ConferenceFilter{Column: "month", Op: "=", Value: 6}, validated[0])
	assert.Equal(t, domain.ConferenceFilter{Column: "city", Op: "!=", Value: "London"}, validated[1])
}

func TestConferenceService_Query_EnrichesOrganizers(t *testing.T) {
	confRepo := newFakeConferenceRepo()
	profileRepo := newFakeProfileRepo()
	profileRepo.byID["org-1"] = &domain.Profile{ID: "org-1", DisplayName: "Alice"}
	confRepo.queryResults = []*domain.Conference{
		{ID: "conf-1", Name: "A", OrganizerID: "org-1"},
		{ID: "conf-2", Name: "B", OrganizerID: "org-1"},
	}
	svc := NewConferenceService(confRepo, profileRepo, &fakeTaskQueue{}, time.Second)

	out, err := svc.Query(context.Background(), []domain.QueryFilter{
		{Field: "CITY", Operator: "EQ", Value: "London"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Alice", out[0].OrganizerDisplayName)
	assert.Equal(t, "Alice", out[1].OrganizerDisplayName)
	assert.Equal(t, []domain.ConferenceFilter{{Column: "city", Op: "=", Value: "London"}}, confRepo.queryFilters)
}
