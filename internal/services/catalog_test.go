package services

import (
	"context"
	"testing"
	"time"

	"symposium/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	topics       *fakeTopicRepo
	halls        *fakeHallRepo
	hotels       *fakeHotelRepo
	participants *fakeParticipantRepo
	service      domain.CatalogService
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		topics:       newFakeTopicRepo(),
		halls:        newFakeHallRepo(),
		hotels:       newFakeHotelRepo(),
		participants: newFakeParticipantRepo(),
	}
	f.service = NewCatalogService(f.topics, f.halls, f.hotels, f.participants, 5*time.Second)
	return f
}

func TestCatalogService_CreateTopic(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newCatalogFixture()
		speaker := &domain.Participant{FirstName: "Anna", LastName: "Kowalska", Role: domain.RoleSpeaker, Country: domain.CountryPoland}
		require.NoError(t, f.participants.Create(ctx, speaker))

		topic, err := f.service.CreateTopic(ctx, "  Distributed Consensus  ", []int64{speaker.ID})
		require.NoError(t, err)
		assert.Equal(t, "Distributed Consensus", topic.Name)
		assert.NotZero(t, topic.ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newCatalogFixture()
		_, err := f.service.CreateTopic(ctx, "Consensus", nil)
		require.NoError(t, err)

		_, err = f.service.CreateTopic(ctx, "Consensus", nil)
		require.ErrorIs(t, err, domain.ErrDuplicateTopicName)
	})

	t.Run("blank name", func(t *testing.T) {
		f := newCatalogFixture()
		_, err := f.service.CreateTopic(ctx, "   ", nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown presenter", func(t *testing.T) {
		f := newCatalogFixture()
		_, err := f.service.CreateTopic(ctx, "Consensus", []int64{42})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogService_CreateHall(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newCatalogFixture()
		hotel, err := f.service.CreateHotel(ctx, "Grand Hotel", "Main Street 1")
		require.NoError(t, err)

		hall, err := f.service.CreateHall(ctx, "Ballroom", hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, hotel.ID, hall.HotelID)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newCatalogFixture()
		_, err := f.service.CreateHall(ctx, "Ballroom", 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogService_Lists(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()

	topics, err := f.service.ListTopics(ctx)
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)

	hotels, err := f.service.ListHotels(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hotels)

	halls, err := f.service.ListHalls(ctx)
	require.NoError(t, err)
	assert.NotNil(t, halls)
}
