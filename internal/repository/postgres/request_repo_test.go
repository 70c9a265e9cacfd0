package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artwalls/internal/domain"
)

var requestColumns = []string{"id", "artist_id", "host_id", "kind", "status", "note", "artwork_id", "created_at", "updated_at"}

func TestRequestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success assigns id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO requests`).
					WithArgs("artist-1", "host-1", "application", "submitted", "hi", nil, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("req-1"))
			},
		},
		{
			name: "unique violation maps to ErrDuplicateActiveRequest",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO requests`).
					WithArgs("artist-1", "host-1", "application", "submitted", "hi", nil, now, now).
					WillReturnError(&pq.Error{Code: "23505", Constraint: requestActiveIndex})
			},
			wantErr: domain.ErrDuplicateActiveRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRequestRepository(db)
			req := domain.NewRequest("artist-1", "host-1", domain.KindApplication, domain.StatusSubmitted, "hi", nil, now, now)
			err = repo.Create(ctx, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "req-1", req.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRequestRepository_FindActiveByPair(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("returns active request", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM requests\s+WHERE artist_id = \$1 AND host_id = \$2 AND status NOT IN`).
			WithArgs("artist-1", "host-1").
			WillReturnRows(sqlmock.NewRows(requestColumns).
				AddRow("req-1", "artist-1", "host-1", "waitlist", "waitlisted", "", nil, now, now))

		repo := NewRequestRepository(db)
		got, err := repo.FindActiveByPair(ctx, "artist-1", "host-1")
		require.NoError(t, err)
		assert.Equal(t, "req-1", got.ID)
		assert.Equal(t, domain.StatusWaitlisted, got.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active request returns ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM requests\s+WHERE artist_id = \$1 AND host_id = \$2 AND status NOT IN`).
			WithArgs("artist-1", "host-1").
			WillReturnRows(sqlmock.NewRows(requestColumns))

		repo := NewRequestRepository(db)
		_, err = repo.FindActiveByPair(ctx, "artist-1", "host-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequestRepository_ListByHostID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("no filter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM requests\s+WHERE host_id = \$1\s+ORDER BY created_at DESC`).
			WithArgs("host-1").
			WillReturnRows(sqlmock.NewRows(requestColumns).
				AddRow("req-2", "artist-2", "host-1", "application", "submitted", "", nil, now, now).
				AddRow("req-1", "artist-1", "host-1", "waitlist", "waitlisted", "", "artwork-9", now, now))

		repo := NewRequestRepository(db)
		got, err := repo.ListByHostID(ctx, "host-1", domain.RequestFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "req-2", got[0].ID)
		require.NotNil(t, got[1].ArtworkID)
		assert.Equal(t, "artwork-9", *got[1].ArtworkID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("kind and status filters", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM requests\s+WHERE host_id = \$1 AND kind = \$2 AND status = \$3\s+ORDER BY created_at DESC`).
			WithArgs("host-1", "waitlist", "waitlisted").
			WillReturnRows(sqlmock.NewRows(requestColumns))

		repo := NewRequestRepository(db)
		got, err := repo.ListByHostID(ctx, "host-1", domain.RequestFilter{Kind: domain.KindWaitlist, Status: domain.StatusWaitlisted})
		require.NoError(t, err)
		assert.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_CountByArtistSince(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM requests\s+WHERE artist_id = \$1 AND created_at >= \$2 AND status <> ALL\(\$3\)`).
		WithArgs("artist-1", since, pq.Array([]string{"withdrawn", "removed"})).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewRequestRepository(db)
	got, err := repo.CountByArtistSince(ctx, "artist-1", since, []domain.RequestStatus{domain.StatusWithdrawn, domain.StatusRemoved})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE requests\s+SET status = \$2, updated_at = \$3\s+WHERE id = \$1`).
			WithArgs("req-1", "approved", now).
			WillReturnRows(sqlmock.NewRows(requestColumns).
				AddRow("req-1", "artist-1", "host-1", "application", "approved", "", nil, now, now))

		repo := NewRequestRepository(db)
		got, err := repo.UpdateStatus(ctx, "req-1", domain.StatusApproved, now)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, got.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE requests\s+SET status = \$2, updated_at = \$3\s+WHERE id = \$1`).
			WithArgs("req-404", "approved", now).
			WillReturnRows(sqlmock.NewRows(requestColumns))

		repo := NewRequestRepository(db)
		_, err = repo.UpdateStatus(ctx, "req-404", domain.StatusApproved, now)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequestRepository_UpdateStatusAndKind(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Waitlist conversion: kind and status change in a single update.
	mock.ExpectQuery(`UPDATE requests\s+SET status = \$2, kind = \$3, updated_at = \$4\s+WHERE id = \$1`).
		WithArgs("req-1", "submitted", "application", now).
		WillReturnRows(sqlmock.NewRows(requestColumns).
			AddRow("req-1", "artist-1", "host-1", "application", "submitted", "", nil, now, now))

	repo := NewRequestRepository(db)
	got, err := repo.UpdateStatusAndKind(ctx, "req-1", domain.StatusSubmitted, domain.KindApplication, now)
	require.NoError(t, err)
	assert.Equal(t, domain.KindApplication, got.Kind)
	assert.Equal(t, domain.StatusSubmitted, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
