package services

import (
	"context"
	"testing"
	"time"

	"symposium/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresentationRepo is an in-memory PresentationRepository for tests.
type fakePresentationRepo struct {
	byID        map[int64]*domain.Presentation
	nextID      int64
	topSpeakers []*domain.SpeakerStats
	saveErr     error
}

func newFakePresentationRepo() *fakePresentationRepo {
	return &fakePresentationRepo{byID: make(map[int64]*domain.Presentation), nextID: 1}
}

func (f *fakePresentationRepo) clone(p *domain.Presentation) *domain.Presentation {
	cp := *p
	return &cp
}

func (f *fakePresentationRepo) Save(ctx context.Context, p *domain.Presentation) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	} else if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = f.clone(p)
	return nil
}

func (f *fakePresentationRepo) GetByID(ctx context.Context, id int64) (*domain.Presentation, error) {
	if p, ok := f.byID[id]; ok {
		return f.clone(p), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePresentationRepo) FindByTopicID(ctx context.Context, topicID int64) (*domain.Presentation, error) {
	for _, p := range f.byID {
		if p.TopicID == topicID {
			return f.clone(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePresentationRepo) FindByHallSlot(ctx context.Context, hallID int64, startTime time.Time) (*domain.Presentation, error) {
	for _, p := range f.byID {
		if p.HallID != nil && *p.HallID == hallID && p.StartTime != nil && p.StartTime.Equal(startTime) {
			return f.clone(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePresentationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePresentationRepo) List(ctx context.Context) ([]*domain.PresentationListItem, error) {
	var items []*domain.PresentationListItem
	for _, p := range f.byID {
		items = append(items, &domain.PresentationListItem{ID: p.ID, StartTime: p.StartTime})
	}
	return items, nil
}

func (f *fakePresentationRepo) CountByHallID(ctx context.Context, hallID int64) (int64, error) {
	var count int64
	for _, p := range f.byID {
		if p.HallID != nil && *p.HallID == hallID {
			count++
		}
	}
	return count, nil
}

func (f *fakePresentationRepo) TopSpeakers(ctx context.Context, limit int) ([]*domain.SpeakerStats, error) {
	if limit > 0 && limit < len(f.topSpeakers) {
		return f.topSpeakers[:limit], nil
	}
	return f.topSpeakers, nil
}

func (f *fakePresentationRepo) WithinTx(ctx context.Context, fn func(domain.PresentationRepository) error) error {
	return fn(f)
}

// fakeTopicRepo is an in-memory TopicRepository for tests.
type fakeTopicRepo struct {
	byID      map[int64]*domain.Topic
	nextID    int64
	createErr error
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{byID: make(map[int64]*domain.Topic), nextID: 1}
}

func (f *fakeTopicRepo) Create(ctx context.Context, t *domain.Topic) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Name == t.Name {
			return domain.ErrDuplicateTopicName
		}
	}
	t.ID = f.nextID
	f.nextID++
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTopicRepo) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTopicRepo) List(ctx context.Context) ([]*domain.Topic, error) {
	var out []*domain.Topic
	for _, t := range f.byID {
		out = append(out, t)
	}
	return out, nil
}

// fakeHotelRepo is an in-memory HotelRepository for tests.
type fakeHotelRepo struct {
	byID   map[int64]*domain.Hotel
	nextID int64
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{byID: make(map[int64]*domain.Hotel), nextID: 1}
}

func (f *fakeHotelRepo) Create(ctx context.Context, h *domain.Hotel) error {
	h.ID = f.nextID
	f.nextID++
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHotelRepo) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	if h, ok := f.byID[id]; ok {
		return h, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHotelRepo) List(ctx context.Context) ([]*domain.Hotel, error) {
	var out []*domain.Hotel
	for _, h := range f.byID {
		out = append(out, h)
	}
	return out, nil
}

// fakeHallRepo is an in-memory HallRepository for tests.
type fakeHallRepo struct {
	byID   map[int64]*domain.ConferenceHall
	nextID int64
}

func newFakeHallRepo() *fakeHallRepo {
	return &fakeHallRepo{byID: make(map[int64]*domain.ConferenceHall), nextID: 1}
}

func (f *fakeHallRepo) Create(ctx context.Context, h *domain.ConferenceHall) error {
	h.ID = f.nextID
	f.nextID++
	f.byID[h.ID] = h
	return nil
}

func (f *fakeHallRepo) GetByID(ctx context.Context, id int64) (*domain.ConferenceHall, error) {
	if h, ok := f.byID[id]; ok {
		return h, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHallRepo) List(ctx context.Context) ([]*domain.ConferenceHall, error) {
	var out []*domain.ConferenceHall
	for _, h := range f.byID {
		out = append(out, h)
	}
	return out, nil
}

// fakeParticipantRepo is an in-memory ParticipantRepository for tests.
type fakeParticipantRepo struct {
	byID   map[int64]*domain.Participant
	nextID int64
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{byID: make(map[int64]*domain.Participant), nextID: 1}
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	if p.Email != nil {
		for _, existing := range f.byID {
			if existing.Email != nil && *existing.Email == *p.Email {
				return domain.ErrDuplicateParticipantEmail
			}
		}
	}
	p.ID = f.nextID
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) Update(ctx context.Context, p *domain.Participant) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if p.Email != nil {
		for _, existing := range f.byID {
			if existing.ID != p.ID && existing.Email != nil && *existing.Email == *p.Email {
				return domain.ErrDuplicateParticipantEmail
			}
		}
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) List(ctx context.Context, order domain.ParticipantOrder, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	var out []*domain.Participant
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (f *fakeParticipantRepo) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.byID[id]; ok && p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) ListByCountry(ctx context.Context, country domain.Country) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.byID[id]; ok && p.Country == country {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeEmailService records schedule notices instead of sending them.
type fakeEmailService struct {
	sent []*domain.PresentationScheduledEmailData
	err  error
}

func (f *fakeEmailService) SendPresentationScheduled(ctx context.Context, data *domain.PresentationScheduledEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type schedulingFixture struct {
	presentations *fakePresentationRepo
	topics        *fakeTopicRepo
	halls         *fakeHallRepo
	hotels        *fakeHotelRepo
	participants  *fakeParticipantRepo
	emails        *fakeEmailService
	service       domain.SchedulingService
}

func newSchedulingFixture() *schedulingFixture {
	f := &schedulingFixture{
		presentations: newFakePresentationRepo(),
		topics:        newFakeTopicRepo(),
		halls:         newFakeHallRepo(),
		hotels:        newFakeHotelRepo(),
		participants:  newFakeParticipantRepo(),
		emails:        &fakeEmailService{},
	}
	f.service = NewSchedulingService(f.presentations, f.topics, f.halls, f.participants, f.emails, 5*time.Second)
	return f
}

func (f *schedulingFixture) addTopic(t *testing.T, name string) *domain.Topic {
	t.Helper()
	topic := &domain.Topic{Name: name}
	require.NoError(t, f.topics.Create(context.Background(), topic))
	return topic
}

func (f *schedulingFixture) addHall(t *testing.T, name string) *domain.ConferenceHall {
	t.Helper()
	hall := &domain.ConferenceHall{Name: name, HotelID: 1}
	require.NoError(t, f.halls.Create(context.Background(), hall))
	return hall
}

func (f *schedulingFixture) addParticipant(t *testing.T, firstName string, email *string) *domain.Participant {
	t.Helper()
	p := &domain.Participant{FirstName: firstName, LastName: "Test", Email: email, Role: domain.RoleSpeaker, Country: domain.CountryPoland}
	require.NoError(t, f.participants.Create(context.Background(), p))
	return p
}

func TestSchedulingService_Schedule_Create(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	topic := f.addTopic(t, "Distributed Consensus")
	hall := f.addHall(t, "Main Hall")
	email := "anna@example.com"
	speaker := f.addParticipant(t, "Anna", &email)
	silent := f.addParticipant(t, "Jan", nil)

	start := time.Date(2026, 5, 10, 11, 0, 42, 99, time.UTC)
	got, err := f.service.Schedule(ctx, domain.ScheduleInput{
		TopicID:        topic.ID,
		HallID:         &hall.ID,
		StartTime:      &start,
		ParticipantIDs: []int64{speaker.ID, silent.ID},
	})
	require.NoError(t, err)
	require.NotZero(t, got.ID)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC), *got.StartTime, "start time keeps minute precision")

	// Only the participant with an email address gets the notice.
	require.Len(t, f.emails.sent, 1)
	assert.Equal(t, email, f.emails.sent[0].Email)
	assert.Equal(t, "Distributed Consensus", f.emails.sent[0].TopicName)
	assert.Equal(t, "Main Hall", f.emails.sent[0].HallName)
}

func TestSchedulingService_Schedule_DuplicateTopic(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	topic := f.addTopic(t, "Distributed Consensus")
	hallA := f.addHall(t, "Hall A")
	hallB := f.addHall(t, "Hall B")

	start := time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC)
	_, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID, HallID: &hallA.ID, StartTime: &start})
	require.NoError(t, err)

	// Same topic in a different hall at a different time is still rejected.
	later := start.Add(2 * time.Hour)
	_, err = f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID, HallID: &hallB.ID, StartTime: &later})
	require.ErrorIs(t, err, domain.ErrDuplicateTopicScheduling)
}

func TestSchedulingService_Schedule_HallTimeConflict(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	first := f.addTopic(t, "Consensus")
	second := f.addTopic(t, "Caching")
	hall := f.addHall(t, "Main Hall")

	start := time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC)
	_, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: first.ID, HallID: &hall.ID, StartTime: &start})
	require.NoError(t, err)

	_, err = f.service.Schedule(ctx, domain.ScheduleInput{TopicID: second.ID, HallID: &hall.ID, StartTime: &start})
	require.ErrorIs(t, err, domain.ErrHallTimeConflict)

	// One minute later the hall is free again; the slot is a point in time.
	later := start.Add(time.Minute)
	_, err = f.service.Schedule(ctx, domain.ScheduleInput{TopicID: second.ID, HallID: &hall.ID, StartTime: &later})
	require.NoError(t, err)
}

func TestSchedulingService_Schedule_SelfUpdateKeepsSlot(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	topic := f.addTopic(t, "Consensus")
	hall := f.addHall(t, "Main Hall")

	start := time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC)
	created, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID, HallID: &hall.ID, StartTime: &start})
	require.NoError(t, err)
	f.emails.sent = nil

	// Re-saving the same presentation with its own topic and slot is a no-op
	// conflict-wise; a presentation never conflicts with itself.
	updated, err := f.service.Schedule(ctx, domain.ScheduleInput{
		ID:        created.ID,
		TopicID:   topic.ID,
		HallID:    &hall.ID,
		StartTime: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Empty(t, f.emails.sent, "updates do not resend schedule notices")
}

func TestSchedulingService_Schedule_UpdateIntoOccupiedSlot(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	first := f.addTopic(t, "Consensus")
	second := f.addTopic(t, "Caching")
	hall := f.addHall(t, "Main Hall")

	start := time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC)
	later := start.Add(time.Hour)
	_, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: first.ID, HallID: &hall.ID, StartTime: &start})
	require.NoError(t, err)
	other, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: second.ID, HallID: &hall.ID, StartTime: &later})
	require.NoError(t, err)

	_, err = f.service.Schedule(ctx, domain.ScheduleInput{
		ID:        other.ID,
		TopicID:   second.ID,
		HallID:    &hall.ID,
		StartTime: &start,
	})
	require.ErrorIs(t, err, domain.ErrHallTimeConflict)
}

func TestSchedulingService_Schedule_Unscheduled(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	topic := f.addTopic(t, "Consensus")

	// No hall and no start time: topic uniqueness still holds, slot checks don't apply.
	got, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID})
	require.NoError(t, err)
	assert.Nil(t, got.HallID)
	assert.Nil(t, got.StartTime)

	other := f.addTopic(t, "Caching")
	_, err = f.service.Schedule(ctx, domain.ScheduleInput{TopicID: other.ID})
	require.NoError(t, err)
}

func TestSchedulingService_Schedule_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	topic := f.addTopic(t, "Consensus")
	hallID := int64(99)

	_, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: 42})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID, HallID: &hallID})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID, ParticipantIDs: []int64{42}})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchedulingService_Schedule_EmailFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	f.emails.err = context.DeadlineExceeded
	topic := f.addTopic(t, "Consensus")
	email := "anna@example.com"
	speaker := f.addParticipant(t, "Anna", &email)

	_, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID, ParticipantIDs: []int64{speaker.ID}})
	require.NoError(t, err)
}

func TestSchedulingService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newSchedulingFixture()
	topic := f.addTopic(t, "Consensus")

	created, err := f.service.Schedule(ctx, domain.ScheduleInput{TopicID: topic.ID})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, created.ID))
	require.ErrorIs(t, f.service.Delete(ctx, created.ID), domain.ErrNotFound)

	_, err = f.service.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleValidator_SelfExclusion(t *testing.T) {
	ctx := context.Background()
	repo := newFakePresentationRepo()
	hallID := int64(1)
	start := time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC)
	existing := &domain.Presentation{TopicID: 7, HallID: &hallID, StartTime: &start}
	require.NoError(t, repo.Save(ctx, existing))

	var v ScheduleValidator

	// The stored presentation re-validated against itself passes.
	require.NoError(t, v.Validate(ctx, repo, existing))

	// A new candidate with the same topic or the same slot does not.
	candidate := &domain.Presentation{TopicID: 7}
	require.ErrorIs(t, v.Validate(ctx, repo, candidate), domain.ErrDuplicateTopicScheduling)

	candidate = &domain.Presentation{TopicID: 8, HallID: &hallID, StartTime: &start}
	require.ErrorIs(t, v.Validate(ctx, repo, candidate), domain.ErrHallTimeConflict)
}
