package services

import (
	"context"
	"fmt"
	"time"

	"symposium/internal/domain"
)

type statisticsService struct {
	presentationRepo domain.PresentationRepository
	participantRepo  domain.ParticipantRepository
	contextTimeout   time.Duration
}

// NewStatisticsService creates a StatisticsService with the given repositories.
func NewStatisticsService(
	presentationRepo domain.PresentationRepository,
	participantRepo domain.ParticipantRepository,
	timeout time.Duration,
) domain.StatisticsService {
	return &statisticsService{
		presentationRepo: presentationRepo,
		participantRepo:  participantRepo,
		contextTimeout:   timeout,
	}
}

func (s *statisticsService) TopSpeakers(ctx context.Context, limit int) ([]*domain.SpeakerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stats, err := s.presentationRepo.TopSpeakers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top speakers: %w", err)
	}
	if stats == nil {
		stats = []*domain.SpeakerStats{}
	}
	return stats, nil
}

func (s *statisticsService) CountPresentations(ctx context.Context, hallID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// An unknown hall simply counts zero presentations.
	count, err := s.presentationRepo.CountByHallID(ctx, hallID)
	if err != nil {
		return 0, fmt.Errorf("count presentations: %w", err)
	}
	return count, nil
}

func (s *statisticsService) ParticipantsByRole(ctx context.Context, role domain.Role) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participants, err := s.participantRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list participants by role: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, nil
}

func (s *statisticsService) ParticipantsByCountry(ctx context.Context, country domain.Country) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participants, err := s.participantRepo.ListByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("list participants by country: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, nil
}
