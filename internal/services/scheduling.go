package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"symposium/internal/domain"
)

type schedulingService struct {
	presentationRepo domain.PresentationRepository
	topicRepo        domain.TopicRepository
	hallRepo         domain.HallRepository
	participantRepo  domain.ParticipantRepository
	emailService     domain.EmailService
	validator        ScheduleValidator
	contextTimeout   time.Duration
}

// NewSchedulingService creates a SchedulingService with the given repositories.
func NewSchedulingService(
	presentationRepo domain.PresentationRepository,
	topicRepo domain.TopicRepository,
	hallRepo domain.HallRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.SchedulingService {
	return &schedulingService{
		presentationRepo: presentationRepo,
		topicRepo:        topicRepo,
		hallRepo:         hallRepo,
		participantRepo:  participantRepo,
		emailService:     emailService,
		contextTimeout:   timeout,
	}
}

// startTimeLayout is the minute-precision format used in notifications.
const startTimeLayout = "2006-01-02 15:04"

func (s *schedulingService) Schedule(ctx context.Context, input domain.ScheduleInput) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	topic, err := s.topicRepo.GetByID(ctx, input.TopicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}

	var hall *domain.ConferenceHall
	if input.HallID != nil {
		hall, err = s.hallRepo.GetByID(ctx, *input.HallID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get hall: %w", err)
		}
	}

	participants := make([]*domain.Participant, 0, len(input.ParticipantIDs))
	for _, participantID := range input.ParticipantIDs {
		p, err := s.participantRepo.GetByID(ctx, participantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get participant: %w", err)
		}
		participants = append(participants, p)
	}

	// Slots have minute resolution.
	var startTime *time.Time
	if input.StartTime != nil {
		t := input.StartTime.UTC().Truncate(time.Minute)
		startTime = &t
	}

	now := time.Now()
	candidate := domain.NewPresentation(input.TopicID, input.HallID, startTime, input.ParticipantIDs, now, now)

	// Validator read and store write are one transaction; a concurrent writer
	// that slips past the pre-check is rejected by the storage constraints
	// and surfaces through the same error taxonomy.
	err = s.presentationRepo.WithinTx(ctx, func(repo domain.PresentationRepository) error {
		if input.ID != 0 {
			existing, err := repo.GetByID(ctx, input.ID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.ErrNotFound
				}
				return fmt.Errorf("get presentation: %w", err)
			}
			candidate.ID = existing.ID
			candidate.CreatedAt = existing.CreatedAt
		}
		if err := s.validator.Validate(ctx, repo, candidate); err != nil {
			return err
		}
		return repo.Save(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	if input.ID == 0 {
		s.notifyParticipants(ctx, topic, hall, candidate, participants)
	}
	return candidate, nil
}

// notifyParticipants sends the schedule notice to every participant with an
// email address. Failures are logged and never fail the scheduling itself.
func (s *schedulingService) notifyParticipants(ctx context.Context, topic *domain.Topic, hall *domain.ConferenceHall, p *domain.Presentation, participants []*domain.Participant) {
	hallName := ""
	if hall != nil {
		hallName = hall.Name
	}
	startTime := ""
	if p.StartTime != nil {
		startTime = p.StartTime.Format(startTimeLayout)
	}
	for _, participant := range participants {
		if participant.Email == nil {
			continue
		}
		data := &domain.PresentationScheduledEmailData{
			Email:     *participant.Email,
			FirstName: participant.FirstName,
			TopicName: topic.Name,
			HallName:  hallName,
			StartTime: startTime,
		}
		if err := s.emailService.SendPresentationScheduled(ctx, data); err != nil {
			log.Printf("[SCHEDULE] failed to notify %s: %v", *participant.Email, err)
		}
	}
}

func (s *schedulingService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.presentationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete presentation: %w", err)
	}
	return nil
}

func (s *schedulingService) GetByID(ctx context.Context, id int64) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.presentationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	return p, nil
}

func (s *schedulingService) List(ctx context.Context) ([]*domain.PresentationListItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	items, err := s.presentationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	if items == nil {
		items = []*domain.PresentationListItem{}
	}
	return items, nil
}
