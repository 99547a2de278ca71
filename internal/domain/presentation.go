package domain

import (
	"context"
	"errors"
	"time"
)

// Scheduling invariant violations.
var (
	// ErrDuplicateTopicScheduling is returned when the topic already has a
	// presentation other than the one being updated.
	ErrDuplicateTopicScheduling = errors.New("topic is already scheduled")

	// ErrHallTimeConflict is returned when the hall is already booked at the
	// requested start instant by another presentation.
	ErrHallTimeConflict = errors.New("hall is already booked at this time")
)

// Presentation is a scheduled occurrence of one topic at one conference hall
// and start instant. StartTime and HallID may be nil while the topic is in a
// pre-scheduling state; slot invariants apply only when both are set.
// A presentation occupies a single point-in-time slot at minute precision,
// not a duration.
// swagger:model Presentation
type Presentation struct {
	ID             int64      `json:"id"`
	TopicID        int64      `json:"topic_id"`
	HallID         *int64     `json:"hall_id,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	ParticipantIDs []int64    `json:"participant_ids"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewPresentation returns a new Presentation. ID is set by the repository on create.
func NewPresentation(topicID int64, hallID *int64, startTime *time.Time, participantIDs []int64, createdAt, updatedAt time.Time) *Presentation {
	return &Presentation{
		TopicID:        topicID,
		HallID:         hallID,
		StartTime:      startTime,
		ParticipantIDs: participantIDs,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// PresentationListItem is the flat listing view of a presentation:
// the topic name and, if scheduled, the start time.
// swagger:model PresentationListItem
type PresentationListItem struct {
	ID        int64      `json:"id"`
	TopicName string     `json:"topic_name"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

// PresentationFinder is the read surface the scheduling validator needs.
// Both lookups return ErrNotFound when no presentation matches.
type PresentationFinder interface {
	FindByTopicID(ctx context.Context, topicID int64) (*Presentation, error)
	FindByHallSlot(ctx context.Context, hallID int64, startTime time.Time) (*Presentation, error)
}

// PresentationRepository defines the interface for presentation storage.
// Save inserts when p.ID is zero and updates otherwise; storage-level
// uniqueness rejections are mapped to ErrDuplicateTopicScheduling,
// ErrHallTimeConflict, or ErrConstraintViolation.
type PresentationRepository interface {
	PresentationFinder
	GetByID(ctx context.Context, id int64) (*Presentation, error)
	Save(ctx context.Context, p *Presentation) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*PresentationListItem, error)
	CountByHallID(ctx context.Context, hallID int64) (int64, error)
	TopSpeakers(ctx context.Context, limit int) ([]*SpeakerStats, error)

	// WithinTx runs fn with a repository bound to a single storage
	// transaction. The transaction commits when fn returns nil and rolls
	// back otherwise; there are no partial-commit states.
	WithinTx(ctx context.Context, fn func(PresentationRepository) error) error
}

// ScheduleInput is a candidate presentation assignment.
// A non-zero ID selects the update path for an existing presentation.
type ScheduleInput struct {
	ID             int64
	TopicID        int64
	HallID         *int64
	StartTime      *time.Time
	ParticipantIDs []int64
}

// SchedulingService orchestrates validating and committing presentation
// assignments.
type SchedulingService interface {
	Schedule(ctx context.Context, input ScheduleInput) (*Presentation, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Presentation, error)
	List(ctx context.Context) ([]*PresentationListItem, error)
}
