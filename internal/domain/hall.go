package domain

import (
	"context"
	"time"
)

// Hotel is pure reference data: a venue that owns conference halls.
// swagger:model Hotel
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewHotel returns a new Hotel. ID is set by the repository on create.
func NewHotel(name, address string, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{Name: name, Address: address, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// ConferenceHall is a hall inside a hotel where presentations take place.
// It references its hotel, it does not own it.
// swagger:model ConferenceHall
type ConferenceHall struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	HotelID   int64     `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewConferenceHall returns a new ConferenceHall. ID is set by the repository on create.
func NewConferenceHall(name string, hotelID int64, createdAt, updatedAt time.Time) *ConferenceHall {
	return &ConferenceHall{Name: name, HotelID: hotelID, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// HotelRepository defines the interface for hotel storage.
type HotelRepository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id int64) (*Hotel, error)
	List(ctx context.Context) ([]*Hotel, error)
}

// HallRepository defines the interface for conference hall storage.
type HallRepository interface {
	Create(ctx context.Context, h *ConferenceHall) error
	GetByID(ctx context.Context, id int64) (*ConferenceHall, error)
	List(ctx context.Context) ([]*ConferenceHall, error)
}
