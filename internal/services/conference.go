package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// Defaults applied to missing conference fields, mirroring the profile-facing
// behavior users expect from the hosted product.
const (
	defaultCity = "Default City"
)

var defaultTopics = []string{"Default", "Topic"}

// queryFields maps client filter field names to their backing columns.
var queryFields = map[string]string{
	"CITY":          "city",
	"TOPIC":         "topics",
	"MONTH":         "month",
	"MAX_ATTENDEES": "max_attendees",
}

// queryOperators maps client operator names to SQL comparison operators.
var queryOperators = map[string]string{
	"EQ":   "=",
	"GT":   ">",
	"GTEQ": ">=",
	"LT":   "<",
	"LTEQ": "<=",
	"NE":   "!=",
}

type conferenceService struct {
	conferenceRepo domain.ConferenceRepository
	profileRepo    domain.ProfileRepository
	tasks          domain.TaskQueue
	contextTimeout time.Duration
}

func NewConferenceService(conferenceRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	tasks domain.TaskQueue,
	timeout time.Duration,
) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		profileRepo:    profileRepo,
		tasks:          tasks,
		contextTimeout: timeout,
	}
}

// parseDate accepts YYYY-MM-DD, tolerating a trailing time component.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if len(value) > 10 {
		value = value[:10]
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", value, domain.ErrInvalidInput)
	}
	return &t, nil
}

func (s *conferenceService) Create(ctx context.Context, identity *domain.Identity, in *domain.ConferenceInput) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("conference 'name' field required: %w", domain.ErrInvalidInput)
	}

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}

	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if in.MaxAttendees < 0 {
		return nil, fmt.Errorf("max_attendees must not be negative: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	conf := &domain.Conference{
		Name:         in.Name,
		Description:  in.Description,
		OrganizerID:  profile.ID,
		Topics:       in.Topics,
		City:         in.City,
		StartDate:    startDate,
		EndDate:      endDate,
		MaxAttendees: in.MaxAttendees,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if conf.City == "" {
		conf.City = defaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = append([]string{}, defaultTopics...)
	}
	if conf.StartDate != nil {
		conf.Month = int(conf.StartDate.Month())
	}
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}

	if err := s.conferenceRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	// The confirmation email runs in the background; the conference is
	// already committed, so an enqueue failure does not fail the request.
	info, _ := json.Marshal(conf)
	_ = s.tasks.Enqueue(ctx, domain.TaskSendConfirmationEmail, map[string]string{
		"email":           identity.Email,
		"conference_name": conf.Name,
		"conference_info": string(info),
	})

	return conf, nil
}

func (s *conferenceService) Update(ctx context.Context, identity *domain.Identity, conferenceID string, in *domain.ConferenceUpdate) (*domain.ConferenceWithOrganizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerID != identity.UserID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("conference 'name' field required: %w", domain.ErrInvalidInput)
		}
		conf.Name = *in.Name
	}
	if in.Description != nil {
		conf.Description = *in.Description
	}
	if in.Topics != nil {
		conf.Topics = in.Topics
	}
	if in.City != nil {
		conf.City = *in.City
	}
	if in.StartDate != nil {
		startDate, err := parseDate(*in.StartDate)
		if err != nil {
			return nil, err
		}
		conf.StartDate = startDate
	}
	if in.EndDate != nil {
		endDate, err := parseDate(*in.EndDate)
		if err != nil {
			return nil, err
		}
		conf.EndDate = endDate
	}
	if in.MaxAttendees != nil {
		if *in.MaxAttendees < 0 {
			return nil, fmt.Errorf("max_attendees must not be negative: %w", domain.ErrInvalidInput)
		}
		conf.MaxAttendees = *in.MaxAttendees
	}

	// Month follows the start date.
	conf.Month = 0
	if conf.StartDate != nil {
		conf.Month = int(conf.StartDate.Month())
	}
	conf.UpdatedAt = time.Now()

	if err := s.conferenceRepo.Update(ctx, conf); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update conference: %w", err)
	}
	return s.withOrganizer(ctx, conf)
}

func (s *conferenceService) Get(ctx context.Context, conferenceID string) (*domain.ConferenceWithOrganizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return s.withOrganizer(ctx, conf)
}

func (s *conferenceService) ListCreatedBy(ctx context.Context, identity *domain.Identity) ([]*domain.ConferenceWithOrganizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	conferences, err := s.conferenceRepo.ListByOrganizerID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}

	out := make([]*domain.ConferenceWithOrganizer, 0, len(conferences))
	for _, conf := range conferences {
		out = append(out, &domain.ConferenceWithOrganizer{
			Conference:           conf,
			OrganizerDisplayName: profile.DisplayName,
		})
	}
	return out, nil
}

func (s *conferenceService) Query(ctx context.Context, filters []domain.QueryFilter) ([]*domain.ConferenceWithOrganizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	validated, orderColumn, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	conferences, err := s.conferenceRepo.Query(ctx, validated, orderColumn)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	return withOrganizerNames(ctx, s.profileRepo, conferences)
}

// validateFilters checks each filter against the field and operator whitelists
// and types the values. At most one field may carry inequality operators; that
// field becomes the primary sort column.
func validateFilters(filters []domain.QueryFilter) ([]domain.ConferenceFilter, string, error) {
	out := make([]domain.ConferenceFilter, 0, len(filters))
	inequalityColumn := ""

	for _, f := range filters {
		column, ok := queryFields[f.Field]
		if !ok {
			return nil, "", fmt.Errorf("unknown filter field %q: %w", f.Field, domain.ErrInvalidInput)
		}
		op, ok := queryOperators[f.Operator]
		if !ok {
			return nil, "", fmt.Errorf("unknown filter operator %q: %w", f.Operator, domain.ErrInvalidInput)
		}

		var value any = f.Value
		if column == "month" || column == "max_attendees" {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, "", fmt.Errorf("filter %s needs an integer value: %w", f.Field, domain.ErrInvalidInput)
			}
			value = n
		}

		if op != "=" {
			if inequalityColumn != "" && inequalityColumn != column {
				return nil, "", fmt.Errorf("inequality filter allowed on only one field: %w", domain.ErrInvalidInput)
			}
			inequalityColumn = column
		}

		out = append(out, domain.ConferenceFilter{Column: column, Op: op, Value: value})
	}
	return out, inequalityColumn, nil
}

func (s *conferenceService) withOrganizer(ctx context.Context, conf *domain.Conference) (*domain.ConferenceWithOrganizer, error) {
	names, err := s.profileRepo.GetDisplayNames(ctx, []string{conf.OrganizerID})
	if err != nil {
		return nil, fmt.Errorf("get organizer name: %w", err)
	}
	return &domain.ConferenceWithOrganizer{
		Conference:           conf,
		OrganizerDisplayName: names[conf.OrganizerID],
	}, nil
}
