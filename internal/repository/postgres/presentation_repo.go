package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"symposium/internal/domain"
)

type presentationRepository struct {
	// db is nil for a transaction-scoped repository; q is the active querier.
	db *sql.DB
	q  querier
}

// NewPresentationRepository returns a PresentationRepository backed by PostgreSQL.
func NewPresentationRepository(db *sql.DB) domain.PresentationRepository {
	return &presentationRepository{db: db, q: db}
}

// mapScheduleConstraint translates a unique-violation into the scheduling
// error taxonomy so a race lost at commit time surfaces exactly like a
// validator pre-check failure.
func mapScheduleConstraint(err error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) || perr.Code != "23505" {
		return err
	}
	switch perr.Constraint {
	case "presentations_topic_id_key", "presentations_topic_slot_key":
		return domain.ErrDuplicateTopicScheduling
	case "presentations_hall_slot_key":
		return domain.ErrHallTimeConflict
	}
	return domain.ErrConstraintViolation
}

func (r *presentationRepository) WithinTx(ctx context.Context, fn func(domain.PresentationRepository) error) error {
	if r.db == nil {
		// Already transaction-scoped; nested calls join the same transaction.
		return fn(r)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&presentationRepository{q: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return mapScheduleConstraint(err)
	}
	return nil
}

func (r *presentationRepository) Save(ctx context.Context, p *domain.Presentation) error {
	if p.ID == 0 {
		query := `
			INSERT INTO presentations (topic_id, hall_id, start_time, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := r.q.QueryRowContext(ctx, query, p.TopicID, p.HallID, p.StartTime, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
		if err != nil {
			return mapScheduleConstraint(err)
		}
	} else {
		query := `
			UPDATE presentations
			SET topic_id = $1, hall_id = $2, start_time = $3, updated_at = $4
			WHERE id = $5
		`
		res, err := r.q.ExecContext(ctx, query, p.TopicID, p.HallID, p.StartTime, p.UpdatedAt, p.ID)
		if err != nil {
			return mapScheduleConstraint(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}
	}
	// Replace the participant set for this presentation.
	if _, err := r.q.ExecContext(ctx, `DELETE FROM presentation_participants WHERE presentation_id = $1`, p.ID); err != nil {
		return err
	}
	for _, participantID := range p.ParticipantIDs {
		_, err := r.q.ExecContext(ctx,
			`INSERT INTO presentation_participants (presentation_id, participant_id) VALUES ($1, $2)`,
			p.ID, participantID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

const presentationColumns = `id, topic_id, hall_id, start_time, created_at, updated_at`

func (r *presentationRepository) GetByID(ctx context.Context, id int64) (*domain.Presentation, error) {
	query := `SELECT ` + presentationColumns + ` FROM presentations WHERE id = $1`
	p, err := scanPresentation(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	rows, err := r.q.QueryContext(ctx,
		`SELECT participant_id FROM presentation_participants WHERE presentation_id = $1 ORDER BY participant_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var pid int64
		if err := rows.Scan(&pid); err != nil {
			return nil, err
		}
		p.ParticipantIDs = append(p.ParticipantIDs, pid)
	}
	return p, rows.Err()
}

func (r *presentationRepository) FindByTopicID(ctx context.Context, topicID int64) (*domain.Presentation, error) {
	query := `SELECT ` + presentationColumns + ` FROM presentations WHERE topic_id = $1`
	p, err := scanPresentation(r.q.QueryRowContext(ctx, query, topicID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) FindByHallSlot(ctx context.Context, hallID int64, startTime time.Time) (*domain.Presentation, error) {
	query := `SELECT ` + presentationColumns + ` FROM presentations WHERE hall_id = $1 AND start_time = $2`
	p, err := scanPresentation(r.q.QueryRowContext(ctx, query, hallID, startTime))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *presentationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM presentations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *presentationRepository) List(ctx context.Context) ([]*domain.PresentationListItem, error) {
	query := `
		SELECT pr.id, t.name, pr.start_time
		FROM presentations pr
		INNER JOIN topics t ON t.id = pr.topic_id
		ORDER BY pr.id
	`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.PresentationListItem
	for rows.Next() {
		item := &domain.PresentationListItem{}
		var start sql.NullTime
		if err := rows.Scan(&item.ID, &item.TopicName, &start); err != nil {
			return nil, err
		}
		if start.Valid {
			item.StartTime = &start.Time
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *presentationRepository) CountByHallID(ctx context.Context, hallID int64) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM presentations WHERE hall_id = $1`, hallID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *presentationRepository) TopSpeakers(ctx context.Context, limit int) ([]*domain.SpeakerStats, error) {
	// Ties on the presentation count break by ascending participant id so the
	// ranking is deterministic. LIMIT NULL means unbounded.
	query := `
		SELECT p.id, p.first_name, p.last_name, COUNT(pr.id) AS presentations
		FROM presentations pr
		INNER JOIN presentation_participants pp ON pp.presentation_id = pr.id
		INNER JOIN participants p ON p.id = pp.participant_id
		WHERE p.role = $1
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY COUNT(pr.id) DESC, p.id ASC
		LIMIT $2
	`
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.q.QueryContext(ctx, query, string(domain.RoleSpeaker), lim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stats []*domain.SpeakerStats
	for rows.Next() {
		s := &domain.SpeakerStats{}
		if err := rows.Scan(&s.ParticipantID, &s.FirstName, &s.LastName, &s.Presentations); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func scanPresentation(row rowScanner) (*domain.Presentation, error) {
	p := &domain.Presentation{ParticipantIDs: []int64{}}
	var hallID sql.NullInt64
	var start sql.NullTime
	if err := row.Scan(&p.ID, &p.TopicID, &hallID, &start, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if hallID.Valid {
		p.HallID = &hallID.Int64
	}
	if start.Valid {
		p.StartTime = &start.Time
	}
	return p, nil
}
