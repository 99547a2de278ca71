package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateTopicName is returned when a topic with the same name already exists.
var ErrDuplicateTopicName = errors.New("topic name already exists")

// Topic is a subject matter that can be presented at most once system-wide.
// PresenterIDs are the participants designated as the topic's presenters.
// swagger:model Topic
type Topic struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PresenterIDs []int64   `json:"presenter_ids"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewTopic returns a new Topic. ID is set by the repository on create.
func NewTopic(name string, presenterIDs []int64, createdAt, updatedAt time.Time) *Topic {
	return &Topic{
		Name:         name,
		PresenterIDs: presenterIDs,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// TopicRepository defines the interface for topic storage.
type TopicRepository interface {
	Create(ctx context.Context, t *Topic) error
	GetByID(ctx context.Context, id int64) (*Topic, error)
	List(ctx context.Context) ([]*Topic, error)
}

// CatalogService defines registration and listing of reference data:
// topics, conference halls, and hotels.
type CatalogService interface {
	CreateTopic(ctx context.Context, name string, presenterIDs []int64) (*Topic, error)
	ListTopics(ctx context.Context) ([]*Topic, error)
	CreateHotel(ctx context.Context, name, address string) (*Hotel, error)
	ListHotels(ctx context.Context) ([]*Hotel, error)
	CreateHall(ctx context.Context, name string, hotelID int64) (*ConferenceHall, error)
	ListHalls(ctx context.Context) ([]*ConferenceHall, error)
}
