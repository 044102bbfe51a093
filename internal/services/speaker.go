package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

func NewSpeakerService(speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

// GetOrCreate registers a speaker under their display name. On an existing
// speaker only a non-empty bio is refreshed; the name is the key and the email
// stays as first registered.
func (s *speakerService) GetOrCreate(ctx context.Context, in *domain.SpeakerInput) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, fmt.Errorf("speaker 'display_name' field required: %w", domain.ErrInvalidInput)
	}

	speaker, err := s.speakerRepo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get speaker: %w", err)
		}
		speaker = &domain.Speaker{
			DisplayName: name,
			MainEmail:   in.MainEmail,
			Bio:         in.Bio,
			SessionIDs:  []string{},
		}
		if err := s.speakerRepo.Create(ctx, speaker); err != nil {
			return nil, fmt.Errorf("create speaker: %w", err)
		}
		return speaker, nil
	}

	if in.Bio != "" && in.Bio != speaker.Bio {
		speaker.Bio = in.Bio
		if err := s.speakerRepo.Update(ctx, speaker); err != nil {
			return nil, fmt.Errorf("update speaker: %w", err)
		}
	}
	return speaker, nil
}

func (s *speakerService) ListAll(ctx context.Context) ([]*domain.SpeakerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.speakerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}

	out := make([]*domain.SpeakerSummary, 0, len(speakers))
	for _, sp := range speakers {
		out = append(out, &domain.SpeakerSummary{
			DisplayName: sp.DisplayName,
			MainEmail:   sp.MainEmail,
		})
	}
	return out, nil
}
