package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"symposium/internal/domain"
)

type catalogService struct {
	topicRepo       domain.TopicRepository
	hallRepo        domain.HallRepository
	hotelRepo       domain.HotelRepository
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

// NewCatalogService creates a CatalogService with the given repositories.
func NewCatalogService(
	topicRepo domain.TopicRepository,
	hallRepo domain.HallRepository,
	hotelRepo domain.HotelRepository,
	participantRepo domain.ParticipantRepository,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		topicRepo:       topicRepo,
		hallRepo:        hallRepo,
		hotelRepo:       hotelRepo,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *catalogService) CreateTopic(ctx context.Context, name string, presenterIDs []int64) (*domain.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, participantID := range presenterIDs {
		if _, err := s.participantRepo.GetByID(ctx, participantID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get presenter: %w", err)
		}
	}

	now := time.Now()
	topic := domain.NewTopic(name, presenterIDs, now, now)
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		if errors.Is(err, domain.ErrDuplicateTopicName) {
			return nil, domain.ErrDuplicateTopicName
		}
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return topic, nil
}

func (s *catalogService) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	topics, err := s.topicRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if topics == nil {
		topics = []*domain.Topic{}
	}
	return topics, nil
}

func (s *catalogService) CreateHotel(ctx context.Context, name, address string) (*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	hotel := domain.NewHotel(name, strings.TrimSpace(address), now, now)
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}
	return hotel, nil
}

func (s *catalogService) ListHotels(ctx context.Context) ([]*domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if hotels == nil {
		hotels = []*domain.Hotel{}
	}
	return hotels, nil
}

func (s *catalogService) CreateHall(ctx context.Context, name string, hotelID int64) (*domain.ConferenceHall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	now := time.Now()
	hall := domain.NewConferenceHall(name, hotelID, now, now)
	if err := s.hallRepo.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("create hall: %w", err)
	}
	return hall, nil
}

func (s *catalogService) ListHalls(ctx context.Context) ([]*domain.ConferenceHall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	halls, err := s.hallRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}
	if halls == nil {
		halls = []*domain.ConferenceHall{}
	}
	return halls, nil
}
