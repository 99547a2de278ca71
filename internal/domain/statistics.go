package domain

import "context"

// SpeakerStats is one leaderboard row: a speaker and how many presentations
// they are attributed to.
// swagger:model SpeakerStats
type SpeakerStats struct {
	ParticipantID int64  `json:"participant_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Presentations int64  `json:"presentations"`
}

// StatisticsService computes read-only derived views over committed data.
// None of these operations fail on empty result sets; they return empty
// slices or zero counts.
type StatisticsService interface {
	// TopSpeakers returns participants with role SPEAKER ranked by the number
	// of presentations they appear in, descending, ties broken by ascending
	// participant id. limit <= 0 means unbounded.
	TopSpeakers(ctx context.Context, limit int) ([]*SpeakerStats, error)

	// CountPresentations returns the exact number of presentations held in
	// the hall. An unknown hall counts as zero, not an error.
	CountPresentations(ctx context.Context, hallID int64) (int64, error)

	ParticipantsByRole(ctx context.Context, role Role) ([]*Participant, error)
	ParticipantsByCountry(ctx context.Context, country Country) ([]*Participant, error)
}
