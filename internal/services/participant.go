package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"symposium/internal/domain"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

// NewParticipantService creates a ParticipantService with the given repository.
func NewParticipantService(participantRepo domain.ParticipantRepository, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

// normalizeEmail trims and lowercases an optional email; an empty value
// becomes nil so uniqueness only applies to real addresses.
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}

func (s *participantService) Register(ctx context.Context, firstName, lastName string, email *string, role domain.Role, country domain.Country) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	p := domain.NewParticipant(firstName, lastName, normalizeEmail(email), role, country, now, now)
	if err := s.participantRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateParticipantEmail) {
			return nil, domain.ErrDuplicateParticipantEmail
		}
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return p, nil
}

func (s *participantService) Update(ctx context.Context, id int64, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	if upd.FirstName != nil {
		if strings.TrimSpace(*upd.FirstName) == "" {
			return nil, domain.ErrInvalidInput
		}
		p.FirstName = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		if strings.TrimSpace(*upd.LastName) == "" {
			return nil, domain.ErrInvalidInput
		}
		p.LastName = strings.TrimSpace(*upd.LastName)
	}
	if upd.Email != nil {
		// An explicit empty string clears the address.
		p.Email = normalizeEmail(upd.Email)
	}
	if upd.Role != nil {
		p.Role = *upd.Role
	}
	if upd.Country != nil {
		p.Country = *upd.Country
	}
	p.UpdatedAt = time.Now()

	if err := s.participantRepo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicateParticipantEmail) {
			return nil, domain.ErrDuplicateParticipantEmail
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return p, nil
}

func (s *participantService) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}
	return p, nil
}

func (s *participantService) List(ctx context.Context, order domain.ParticipantOrder, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participants, total, err := s.participantRepo.List(ctx, order, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, total, nil
}
