package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrDuplicateParticipantEmail is returned when a participant's email is
// already registered to another participant.
var ErrDuplicateParticipantEmail = errors.New("participant email already in use")

// Role is a participant's role at the symposium.
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleDoctor    Role = "DOCTOR"
	RoleSpeaker   Role = "SPEAKER"
	RoleOrganizer Role = "ORGANIZER"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole returns the Role for s (case-insensitive) or ErrInvalidInput.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleSpeaker:
		return RoleSpeaker, nil
	case RoleOrganizer:
		return RoleOrganizer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidInput
}

// Country is a participant's country of origin.
type Country string

const (
	CountryPoland   Country = "POLAND"
	CountryGermany  Country = "GERMANY"
	CountryFrance   Country = "FRANCE"
	CountrySpain    Country = "SPAIN"
	CountryItaly    Country = "ITALY"
	CountryCzechia  Country = "CZECHIA"
	CountrySlovakia Country = "SLOVAKIA"
	CountryUkraine  Country = "UKRAINE"
	CountryUK       Country = "UNITED_KINGDOM"
	CountryUSA      Country = "UNITED_STATES"
)

// ParseCountry returns the Country for s (case-insensitive) or ErrInvalidInput.
func ParseCountry(s string) (Country, error) {
	switch Country(strings.ToUpper(strings.TrimSpace(s))) {
	case CountryPoland:
		return CountryPoland, nil
	case CountryGermany:
		return CountryGermany, nil
	case CountryFrance:
		return CountryFrance, nil
	case CountrySpain:
		return CountrySpain, nil
	case CountryItaly:
		return CountryItaly, nil
	case CountryCzechia:
		return CountryCzechia, nil
	case CountrySlovakia:
		return CountrySlovakia, nil
	case CountryUkraine:
		return CountryUkraine, nil
	case CountryUK:
		return CountryUK, nil
	case CountryUSA:
		return CountryUSA, nil
	}
	return "", ErrInvalidInput
}

// Participant represents a registered symposium participant.
// swagger:model Participant
type Participant struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email,omitempty"`
	Role      Role      `json:"role"`
	Country   Country   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant. ID is set by the repository on create.
func NewParticipant(firstName, lastName string, email *string, role Role, country Country, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
		Country:   country,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ParticipantOrder selects the ordering of participant listings.
type ParticipantOrder string

const (
	// ParticipantOrderNone lists participants in primary-key order.
	ParticipantOrderNone ParticipantOrder = "none"
	// ParticipantOrderRole lists participants ordered by role name, then id.
	ParticipantOrderRole ParticipantOrder = "role"
)

// ParticipantRepository defines the interface for participant storage.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByID(ctx context.Context, id int64) (*Participant, error)
	Update(ctx context.Context, p *Participant) error
	List(ctx context.Context, order ParticipantOrder, params PaginationParams) ([]*Participant, int, error)
	ListByRole(ctx context.Context, role Role) ([]*Participant, error)
	ListByCountry(ctx context.Context, country Country) ([]*Participant, error)
}

// ParticipantUpdate carries the mutable participant fields for an update.
// Nil pointers leave the current value unchanged.
type ParticipantUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *Role
	Country   *Country
}

// ParticipantService defines registration and listing of participants.
type ParticipantService interface {
	Register(ctx context.Context, firstName, lastName string, email *string, role Role, country Country) (*Participant, error)
	Update(ctx context.Context, id int64, upd ParticipantUpdate) (*Participant, error)
	GetByID(ctx context.Context, id int64) (*Participant, error)
	List(ctx context.Context, order ParticipantOrder, params PaginationParams) ([]*Participant, int, error)
}
