package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artwalls/internal/domain"
)

func TestHostSettingsRepository_GetByHostID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("existing row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT host_id, waitlist_enabled, updated_at\s+FROM host_settings`).
			WithArgs("host-1").
			WillReturnRows(sqlmock.NewRows([]string{"host_id", "waitlist_enabled", "updated_at"}).
				AddRow("host-1", true, now))

		repo := NewHostSettingsRepository(db)
		got, err := repo.GetByHostID(ctx, "host-1")
		require.NoError(t, err)
		assert.True(t, got.WaitlistEnabled)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns defaults", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT host_id, waitlist_enabled, updated_at\s+FROM host_settings`).
			WithArgs("host-2").
			WillReturnRows(sqlmock.NewRows([]string{"host_id", "waitlist_enabled", "updated_at"}))

		repo := NewHostSettingsRepository(db)
		got, err := repo.GetByHostID(ctx, "host-2")
		require.NoError(t, err)
		assert.Equal(t, "host-2", got.HostID)
		assert.False(t, got.WaitlistEnabled)
	})
}

func TestHostSettingsRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO host_settings`).
		WithArgs("host-1", true, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewHostSettingsRepository(db)
	err = repo.Upsert(ctx, &domain.HostSettings{HostID: "host-1", WaitlistEnabled: true, UpdatedAt: now})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
