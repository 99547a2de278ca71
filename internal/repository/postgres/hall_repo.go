package postgres

import (
	"context"
	"database/sql"
	"errors"

	"symposium/internal/domain"
)

type hotelRepository struct {
	DB *sql.DB
}

// NewHotelRepository returns a HotelRepository backed by PostgreSQL.
func NewHotelRepository(db *sql.DB) domain.HotelRepository {
	return &hotelRepository{DB: db}
}

func (r *hotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	query := `
		INSERT INTO hotels (name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, h.Name, h.Address, h.CreatedAt, h.UpdatedAt).Scan(&h.ID)
}

func (r *hotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`
	h := &domain.Hotel{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM hotels
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var hotels []*domain.Hotel
	for rows.Next() {
		h := &domain.Hotel{}
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

type hallRepository struct {
	DB *sql.DB
}

// NewHallRepository returns a HallRepository backed by PostgreSQL.
func NewHallRepository(db *sql.DB) domain.HallRepository {
	return &hallRepository{DB: db}
}

func (r *hallRepository) Create(ctx context.Context, h *domain.ConferenceHall) error {
	query := `
		INSERT INTO conference_halls (name, hotel_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, h.Name, h.HotelID, h.CreatedAt, h.UpdatedAt).Scan(&h.ID)
}

func (r *hallRepository) GetByID(ctx context.Context, id int64) (*domain.ConferenceHall, error) {
	query := `
		SELECT id, name, hotel_id, created_at, updated_at
		FROM conference_halls
		WHERE id = $1
	`
	h := &domain.ConferenceHall{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.HotelID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *hallRepository) List(ctx context.Context) ([]*domain.ConferenceHall, error) {
	query := `
		SELECT id, name, hotel_id, created_at, updated_at
		FROM conference_halls
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var halls []*domain.ConferenceHall
	for rows.Next() {
		h := &domain.ConferenceHall{}
		if err := rows.Scan(&h.ID, &h.Name, &h.HotelID, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		halls = append(halls, h)
	}
	return halls, rows.Err()
}
