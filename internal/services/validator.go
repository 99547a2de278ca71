package services

import (
	"context"
	"errors"
	"fmt"

	"symposium/internal/domain"
)

// ScheduleValidator checks a candidate presentation against the scheduling
// invariants using the given read surface. It is a pure read-then-decide
// check with no side effects; committing is the caller's job. Run it against
// transaction-scoped reads, and rely on the storage constraints to settle
// races the pre-check cannot see.
type ScheduleValidator struct{}

// Validate returns ErrDuplicateTopicScheduling when the candidate's topic is
// already presented by a different presentation, and ErrHallTimeConflict when
// the hall is occupied at the exact start instant by a different
// presentation. The slot check only applies when both hall and start time are
// set. A presentation never conflicts with itself, so re-validating an
// unchanged presentation is a no-op.
func (ScheduleValidator) Validate(ctx context.Context, finder domain.PresentationFinder, candidate *domain.Presentation) error {
	existing, err := finder.FindByTopicID(ctx, candidate.TopicID)
	switch {
	case err == nil:
		if existing.ID != candidate.ID {
			return domain.ErrDuplicateTopicScheduling
		}
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("find presentation by topic: %w", err)
	}

	if candidate.HallID == nil || candidate.StartTime == nil {
		return nil
	}

	occupant, err := finder.FindByHallSlot(ctx, *candidate.HallID, *candidate.StartTime)
	switch {
	case err == nil:
		if occupant.ID != candidate.ID {
			return domain.ErrHallTimeConflict
		}
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("find presentation by hall slot: %w", err)
	}
	return nil
}
