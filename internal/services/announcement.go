package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const (
	announcementCacheKey    = "RECENT_ANNOUNCEMENTS"
	featuredSpeakerCacheKey = "FEATURED_SPEAKER"

	// Conferences with this many seats or fewer (but more than zero) are
	// considered nearly sold out.
	nearlySoldOutSeats = 5

	announcementTpl    = "Last chance to attend! The following conferences are nearly sold out: %s"
	featuredSpeakerTpl = "Featured Speaker %s is presenting %s"
)

type announcementService struct {
	conferenceRepo domain.ConferenceRepository
	sessionRepo    domain.SessionRepository
	cache          domain.Cache
	contextTimeout time.Duration
}

func NewAnnouncementService(conferenceRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	cache domain.Cache,
	timeout time.Duration,
) domain.AnnouncementService {
	return &announcementService{
		conferenceRepo: conferenceRepo,
		sessionRepo:    sessionRepo,
		cache:          cache,
		contextTimeout: timeout,
	}
}

func (s *announcementService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferences, err := s.conferenceRepo.ListNearlySoldOut(ctx, nearlySoldOutSeats)
	if err != nil {
		return "", fmt.Errorf("list nearly sold out conferences: %w", err)
	}

	if len(conferences) == 0 {
		if err := s.cache.Delete(announcementCacheKey); err != nil {
			return "", fmt.Errorf("delete announcement: %w", err)
		}
		return "", nil
	}

	names := make([]string, 0, len(conferences))
	for _, conf := range conferences {
		names = append(names, conf.Name)
	}
	announcement := fmt.Sprintf(announcementTpl, strings.Join(names, ", "))
	if err := s.cache.Set(announcementCacheKey, announcement); err != nil {
		return "", fmt.Errorf("set announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) Announcement(ctx context.Context) (string, error) {
	return s.cache.Get(announcementCacheKey)
}

func (s *announcementService) RecomputeFeaturedSpeaker(ctx context.Context, speaker, conferenceID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListBySpeakerAndConference(ctx, speaker, conferenceID)
	if err != nil {
		return "", fmt.Errorf("list speaker sessions: %w", err)
	}
	if len(sessions) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		names = append(names, sess.Name)
	}
	// Last write wins when multiple speakers cross the threshold.
	message := fmt.Sprintf(featuredSpeakerTpl, speaker, strings.Join(names, ", "))
	if err := s.cache.Set(featuredSpeakerCacheKey, message); err != nil {
		return "", fmt.Errorf("set featured speaker: %w", err)
	}
	return message, nil
}

func (s *announcementService) FeaturedSpeaker(ctx context.Context) (string, error) {
	return s.cache.Get(featuredSpeakerCacheKey)
}
