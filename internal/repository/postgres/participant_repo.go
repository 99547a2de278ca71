package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"symposium/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository returns a ParticipantRepository backed by PostgreSQL.
func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (first_name, last_name, email, role, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.FirstName, p.LastName, nullString(p.Email), string(p.Role), string(p.Country), p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateParticipantEmail
		}
		return err
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	query := `
		SELECT id, first_name, last_name, email, role, country, created_at, updated_at
		FROM participants
		WHERE id = $1
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Update(ctx context.Context, p *domain.Participant) error {
	query := `
		UPDATE participants
		SET first_name = $1, last_name = $2, email = $3, role = $4, country = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query,
		p.FirstName, p.LastName, nullString(p.Email), string(p.Role), string(p.Country), p.UpdatedAt, p.ID,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateParticipantEmail
		}
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

func (r *participantRepository) List(ctx context.Context, order domain.ParticipantOrder, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Role ordering is by role name alphabetically; id keeps it reproducible.
	orderBy := `ORDER BY id`
	if order == domain.ParticipantOrderRole {
		orderBy = `ORDER BY role, id`
	}
	query := `
		SELECT id, first_name, last_name, email, role, country, created_at, updated_at
		FROM participants
		` + orderBy + `
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	participants, err := collectParticipants(rows)
	if err != nil {
		return nil, 0, err
	}
	return participants, total, nil
}

func (r *participantRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Participant, error) {
	query := `
		SELECT id, first_name, last_name, email, role, country, created_at, updated_at
		FROM participants
		WHERE role = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectParticipants(rows)
}

func (r *participantRepository) ListByCountry(ctx context.Context, country domain.Country) ([]*domain.Participant, error) {
	query := `
		SELECT id, first_name, last_name, email, role, country, created_at, updated_at
		FROM participants
		WHERE country = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, string(country))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectParticipants(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	p := &domain.Participant{}
	var email sql.NullString
	var role, country string
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &email, &role, &country, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if email.Valid {
		p.Email = &email.String
	}
	p.Role = domain.Role(role)
	p.Country = domain.Country(country)
	return p, nil
}

func collectParticipants(rows *sql.Rows) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
