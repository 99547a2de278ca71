package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"symposium/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestPresentationRepository_Save_Create(t *testing.T) {
	ctx := context.Background()
	hallID := int64(3)
	start := time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		presentation *domain.Presentation
		mock         func(mock sqlmock.Sqlmock)
		wantID       int64
		wantErr      error
	}{
		{
			name: "success",
			presentation: &domain.Presentation{
				TopicID:        7,
				HallID:         &hallID,
				StartTime:      &start,
				ParticipantIDs: []int64{4, 9},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations \(topic_id, hall_id, start_time, created_at, updated_at\)`).
					WithArgs(int64(7), &hallID, &start, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
				mock.ExpectExec(`DELETE FROM presentation_participants`).
					WithArgs(int64(12)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO presentation_participants`).
					WithArgs(int64(12), int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO presentation_participants`).
					WithArgs(int64(12), int64(9)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantID: 12,
		},
		{
			name:         "topic already presented",
			presentation: &domain.Presentation{TopicID: 7},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "presentations_topic_id_key"})
			},
			wantErr: domain.ErrDuplicateTopicScheduling,
		},
		{
			name: "hall slot taken",
			presentation: &domain.Presentation{
				TopicID:   8,
				HallID:    &hallID,
				StartTime: &start,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "presentations_hall_slot_key"})
			},
			wantErr: domain.ErrHallTimeConflict,
		},
		{
			name:         "other unique violation",
			presentation: &domain.Presentation{TopicID: 8},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO presentations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "presentations_pkey"})
			},
			wantErr: domain.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewPresentationRepository(db)
			err = repo.Save(ctx, tt.presentation)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.presentation.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPresentationRepository_Save_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE presentations`).
			WithArgs(int64(7), nil, nil, sqlmock.AnyArg(), int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM presentation_participants`).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		repo := NewPresentationRepository(db)
		err = repo.Save(ctx, &domain.Presentation{ID: 12, TopicID: 7})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown presentation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE presentations`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPresentationRepository(db)
		err = repo.Save(ctx, &domain.Presentation{ID: 99, TopicID: 7})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPresentationRepository_WithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO presentations`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
		mock.ExpectExec(`DELETE FROM presentation_participants`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewPresentationRepository(db)
		err = repo.WithinTx(ctx, func(txRepo domain.PresentationRepository) error {
			return txRepo.Save(ctx, &domain.Presentation{TopicID: 1})
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := NewPresentationRepository(db)
		err = repo.WithinTx(ctx, func(domain.PresentationRepository) error {
			return domain.ErrHallTimeConflict
		})
		require.ErrorIs(t, err, domain.ErrHallTimeConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("constraint violation at commit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().
			WillReturnError(&pq.Error{Code: "23505", Constraint: "presentations_hall_slot_key"})

		repo := NewPresentationRepository(db)
		err = repo.WithinTx(ctx, func(domain.PresentationRepository) error {
			return nil
		})
		require.ErrorIs(t, err, domain.ErrHallTimeConflict)
	})
}

func TestPresentationRepository_FindByTopicID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		topicID int64
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name:    "found",
			topicID: 7,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, topic_id, hall_id, start_time, created_at, updated_at FROM presentations WHERE topic_id`).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "topic_id", "hall_id", "start_time", "created_at", "updated_at"}).
						AddRow(int64(2), int64(7), nil, nil, time.Now(), time.Now()))
			},
			wantID: 2,
		},
		{
			name:    "not found",
			topicID: 8,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, topic_id, hall_id, start_time, created_at, updated_at FROM presentations WHERE topic_id`).
					WithArgs(int64(8)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewPresentationRepository(db)
			got, err := repo.FindByTopicID(ctx, tt.topicID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestPresentationRepository_CountByHallID(t *testing.T) {
	ctx := context.Background()

	t.Run("counts presentations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM presentations WHERE hall_id`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

		repo := NewPresentationRepository(db)
		count, err := repo.CountByHallID(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, int64(4), count)
	})

	t.Run("unknown hall counts zero", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM presentations WHERE hall_id`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		repo := NewPresentationRepository(db)
		count, err := repo.CountByHallID(ctx, 999)
		require.NoError(t, err)
		require.Equal(t, int64(0), count)
	})
}

func TestPresentationRepository_TopSpeakers(t *testing.T) {
	ctx := context.Background()

	t.Run("ranked with limit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`ORDER BY COUNT\(pr.id\) DESC, p.id ASC`).
			WithArgs("SPEAKER", 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "presentations"}).
				AddRow(int64(4), "Anna", "Kowalska", int64(3)).
				AddRow(int64(1), "Jan", "Nowak", int64(1)))

		repo := NewPresentationRepository(db)
		stats, err := repo.TopSpeakers(ctx, 2)
		require.NoError(t, err)
		require.Len(t, stats, 2)
		require.Equal(t, int64(4), stats[0].ParticipantID)
		require.Equal(t, int64(3), stats[0].Presentations)
		require.Equal(t, int64(1), stats[1].ParticipantID)
	})

	t.Run("unbounded when limit not positive", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`ORDER BY COUNT\(pr.id\) DESC, p.id ASC`).
			WithArgs("SPEAKER", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "presentations"}))

		repo := NewPresentationRepository(db)
		stats, err := repo.TopSpeakers(ctx, 0)
		require.NoError(t, err)
		require.Empty(t, stats)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`ORDER BY COUNT\(pr.id\) DESC, p.id ASC`).
			WillReturnError(sql.ErrConnDone)

		repo := NewPresentationRepository(db)
		_, err = repo.TopSpeakers(ctx, 5)
		require.Error(t, err)
		require.True(t, errors.Is(err, sql.ErrConnDone))
	})
}

func TestPresentationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM presentations WHERE id`).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPresentationRepository(db)
		require.NoError(t, repo.Delete(ctx, 12))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM presentations WHERE id`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPresentationRepository(db)
		require.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
	})
}
