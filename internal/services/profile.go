package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

type profileService struct {
	profileRepo    domain.ProfileRepository
	sessionRepo    domain.SessionRepository
	conferenceRepo domain.ConferenceRepository
	contextTimeout time.Duration
}

func NewProfileService(profileRepo domain.ProfileRepository,
	sessionRepo domain.SessionRepository,
	conferenceRepo domain.ConferenceRepository,
	timeout time.Duration,
) domain.ProfileService {
	return &profileService{
		profileRepo:    profileRepo,
		sessionRepo:    sessionRepo,
		conferenceRepo: conferenceRepo,
		contextTimeout: timeout,
	}
}

// getOrCreateProfile loads the caller's profile, creating it on first access
// with defaults taken from the identity. Shared with the conference service,
// which needs the organizer profile to exist before creating a conference.
func getOrCreateProfile(ctx context.Context, repo domain.ProfileRepository, identity *domain.Identity) (*domain.Profile, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	profile, err := repo.GetByID(ctx, identity.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	profile = &domain.Profile{
		ID:                 identity.UserID,
		DisplayName:        identity.Nickname,
		MainEmail:          identity.Email,
		TeeShirtSize:       domain.TeeShirtSizeNotSpecified,
		ConferenceIDs:      []string{},
		WishlistSessionIDs: []string{},
	}
	if err := repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetOrCreate(ctx context.Context, identity *domain.Identity) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return getOrCreateProfile(ctx, s.profileRepo, identity)
}

func (s *profileService) Update(ctx context.Context, identity *domain.Identity, in *domain.ProfileUpdate) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		profile.DisplayName = *in.DisplayName
	}
	if in.TeeShirtSize != nil {
		if !domain.IsValidTeeShirtSize(*in.TeeShirtSize) {
			return nil, fmt.Errorf("unknown tee shirt size %q: %w", *in.TeeShirtSize, domain.ErrInvalidInput)
		}
		profile.TeeShirtSize = *in.TeeShirtSize
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) AddToWishlist(ctx context.Context, identity *domain.Identity, sessionID string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if contains(profile.WishlistSessionIDs, sessionID) {
		return nil, fmt.Errorf("session already in wishlist: %w", domain.ErrInvalidInput)
	}
	if err := s.profileRepo.AddWishlistSession(ctx, profile.ID, sessionID); err != nil {
		return nil, fmt.Errorf("add wishlist session: %w", err)
	}
	return sess, nil
}

func (s *profileService) RemoveFromWishlist(ctx context.Context, identity *domain.Identity, sessionID string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}

	if !contains(profile.WishlistSessionIDs, sessionID) {
		return nil, fmt.Errorf("session not in wishlist: %w", domain.ErrInvalidInput)
	}
	if err := s.profileRepo.RemoveWishlistSession(ctx, profile.ID, sessionID); err != nil {
		return nil, fmt.Errorf("remove wishlist session: %w", err)
	}

	// Stale entries are removed even when the session no longer exists.
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *profileService) ListWishlist(ctx context.Context, identity *domain.Identity) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	if len(profile.WishlistSessionIDs) == 0 {
		return []*domain.Session{}, nil
	}

	// Ids whose session was deleted are silently dropped.
	sessions, err := s.sessionRepo.ListByIDs(ctx, profile.WishlistSessionIDs)
	if err != nil {
		return nil, fmt.Errorf("list wishlist sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *profileService) Register(ctx context.Context, identity *domain.Identity, conferenceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return false, err
	}

	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get conference: %w", err)
	}

	if err := s.profileRepo.Register(ctx, profile.ID, conferenceID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return false, err
		}
		return false, fmt.Errorf("register: %w", err)
	}
	return true, nil
}

func (s *profileService) Unregister(ctx context.Context, identity *domain.Identity, conferenceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return false, err
	}

	removed, err := s.profileRepo.Unregister(ctx, profile.ID, conferenceID)
	if err != nil {
		return false, fmt.Errorf("unregister: %w", err)
	}
	return removed, nil
}

func (s *profileService) ListAttending(ctx context.Context, identity *domain.Identity) ([]*domain.ConferenceWithOrganizer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := getOrCreateProfile(ctx, s.profileRepo, identity)
	if err != nil {
		return nil, err
	}
	if len(profile.ConferenceIDs) == 0 {
		return []*domain.ConferenceWithOrganizer{}, nil
	}

	conferences, err := s.conferenceRepo.ListByIDs(ctx, profile.ConferenceIDs)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return withOrganizerNames(ctx, s.profileRepo, conferences)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// withOrganizerNames resolves organizer display names for a batch of
// conferences in a single lookup.
func withOrganizerNames(ctx context.Context, profileRepo domain.ProfileRepository, conferences []*domain.Conference) ([]*domain.ConferenceWithOrganizer, error) {
	out := make([]*domain.ConferenceWithOrganizer, 0, len(conferences))
	if len(conferences) == 0 {
		return out, nil
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, conf := range conferences {
		if _, ok := seen[conf.OrganizerID]; ok {
			continue
		}
		seen[conf.OrganizerID] = struct{}{}
		ids = append(ids, conf.OrganizerID)
	}
	names, err := profileRepo.GetDisplayNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get organizer names: %w", err)
	}

	for _, conf := range conferences {
		out = append(out, &domain.ConferenceWithOrganizer{
			Conference:           conf,
			OrganizerDisplayName: names[conf.OrganizerID],
		})
	}
	return out, nil
}
