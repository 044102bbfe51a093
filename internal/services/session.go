package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// featuredSpeakerThreshold is the session count at which a speaker becomes
// featured in a conference.
const featuredSpeakerThreshold = 2

var defaultHighlights = []string{"Default", "Highlights"}

type sessionService struct {
	sessionRepo    domain.SessionRepository
	conferenceRepo domain.ConferenceRepository
	speakerRepo    domain.SpeakerRepository
	tasks          domain.TaskQueue
	contextTimeout time.Duration
}

func NewSessionService(sessionRepo domain.SessionRepository,
	conferenceRepo domain.ConferenceRepository,
	speakerRepo domain.SpeakerRepository,
	tasks domain.TaskQueue,
	timeout time.Duration,
) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		conferenceRepo: conferenceRepo,
		speakerRepo:    speakerRepo,
		tasks:          tasks,
		contextTimeout: timeout,
	}
}

// parseStartTime reads an HH:MM prefix on a 24h clock and returns a time
// carrying only the time of day. Trailing seconds are ignored.
func parseStartTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if len(value) > 5 {
		value = value[:5]
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q, want HH:MM: %w", value, domain.ErrInvalidInput)
	}
	return &t, nil
}

func (s *sessionService) Create(ctx context.Context, identity *domain.Identity, conferenceID string, in *domain.SessionInput) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("session 'name' field required: %w", domain.ErrInvalidInput)
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

	if in.Speaker != "" {
		if _, err := s.speakerRepo.GetByName(ctx, in.Speaker); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("speaker %q: %w", in.Speaker, domain.ErrNotFound)
			}
			return nil, fmt.Errorf("get speaker: %w", err)
		}
	}
	if in.Duration < 0 {
		return nil, fmt.Errorf("duration must not be negative: %w", domain.ErrInvalidInput)
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	startTime, err := parseStartTime(in.StartTime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &domain.Session{
		ConferenceID:  conferenceID,
		Name:          in.Name,
		Highlights:    in.Highlights,
		Speaker:       in.Speaker,
		Duration:      in.Duration,
		TypeOfSession: in.TypeOfSession,
		Date:          date,
		StartTime:     startTime,
		OrganizerID:   identity.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if len(sess.Highlights) == 0 {
		sess.Highlights = append([]string{}, defaultHighlights...)
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if sess.Speaker != "" {
		if err := s.speakerRepo.AppendSessionID(ctx, sess.Speaker, sess.ID); err != nil {
			return nil, fmt.Errorf("append session to speaker: %w", err)
		}
		count, err := s.sessionRepo.CountBySpeakerAndConference(ctx, sess.Speaker, conferenceID)
		if err != nil {
			return nil, fmt.Errorf("count speaker sessions: %w", err)
		}
		// Fire exactly once, when the speaker crosses the threshold. Later
		// sessions by the same speaker must not re-enqueue.
		if count == featuredSpeakerThreshold {
			// Session is committed; a lost task only delays the cached message.
			_ = s.tasks.Enqueue(ctx, domain.TaskSetFeaturedSpeaker, map[string]string{
				"speaker":       sess.Speaker,
				"conference_id": conferenceID,
			})
		}
	}

	return sess, nil
}

func (s *sessionService) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return notNil(sessions), nil
}

func (s *sessionService) ListByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByConferenceIDAndType(ctx, conferenceID, typeOfSession)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return notNil(sessions), nil
}

func (s *sessionService) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListBySpeaker(ctx, speaker)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return notNil(sessions), nil
}

func (s *sessionService) ListPast(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListPast(ctx)
	if err != nil {
		return nil, fmt.Errorf("list past sessions: %w", err)
	}
	return notNil(sessions), nil
}

func (s *sessionService) ListToday(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("list today sessions: %w", err)
	}
	return notNil(sessions), nil
}

func (s *sessionService) ListNonWorkshopBefore(ctx context.Context, hour int) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23: %w", domain.ErrInvalidInput)
	}

	sessions, err := s.sessionRepo.ListStartingBefore(ctx, hour)
	if err != nil {
		return nil, fmt.Errorf("list sessions before hour: %w", err)
	}

	out := make([]*domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if strings.EqualFold(sess.TypeOfSession, "workshop") {
			continue
		}
		out = append(out, sess)
	}
	return out, nil
}

func notNil(sessions []*domain.Session) []*domain.Session {
	if sessions == nil {
		return []*domain.Session{}
	}
	return sessions
}
