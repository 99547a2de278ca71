package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"symposium/internal/domain"
)

type topicRepository struct {
	DB *sql.DB
}

// NewTopicRepository returns a TopicRepository backed by PostgreSQL.
func NewTopicRepository(db *sql.DB) domain.TopicRepository {
	return &topicRepository{DB: db}
}

func (r *topicRepository) Create(ctx context.Context, t *domain.Topic) error {
	query := `
		INSERT INTO topics (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, t.Name, t.CreatedAt, t.UpdatedAt).Scan(&t.ID); err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateTopicName
		}
		return err
	}
	for _, participantID := range t.PresenterIDs {
		_, err := r.DB.ExecContext(ctx,
			`INSERT INTO topic_presenters (topic_id, participant_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			t.ID, participantID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *topicRepository) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM topics
		WHERE id = $1
	`
	t := &domain.Topic{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	t.PresenterIDs = []int64{}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT participant_id FROM topic_presenters WHERE topic_id = $1 ORDER BY participant_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var pid int64
		if err := rows.Scan(&pid); err != nil {
			return nil, err
		}
		t.PresenterIDs = append(t.PresenterIDs, pid)
	}
	return t, rows.Err()
}

func (r *topicRepository) List(ctx context.Context) ([]*domain.Topic, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM topics
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var topics []*domain.Topic
	var ids []int64
	for rows.Next() {
		t := &domain.Topic{PresenterIDs: []int64{}}
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return topics, nil
	}
	presenterRows, err := r.DB.QueryContext(ctx,
		`SELECT topic_id, participant_id FROM topic_presenters WHERE topic_id = ANY($1) ORDER BY participant_id`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer presenterRows.Close()
	byTopic := make(map[int64][]int64)
	for presenterRows.Next() {
		var topicID, participantID int64
		if err := presenterRows.Scan(&topicID, &participantID); err != nil {
			return nil, err
		}
		byTopic[topicID] = append(byTopic[topicID], participantID)
	}
	if err := presenterRows.Err(); err != nil {
		return nil, err
	}
	for _, t := range topics {
		if p := byTopic[t.ID]; p != nil {
			t.PresenterIDs = p
		}
	}
	return topics, nil
}
