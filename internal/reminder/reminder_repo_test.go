package reminder_test

import (
	"context"
	"testing"
	"time"

	"go-magang/internal/reminder"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (reminder.Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return reminder.NewRepository(db), mock
}

func TestReminderRepository(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("missing clock in", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(`(?s)SELECT \* FROM "users" WHERE .*NOT EXISTS.*users\.role = .*ORDER BY users\.full_name`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email"}).
				AddRow("6f1d3c3e-8f0c-4c53-9b0e-0c8f5d5b8a11", "Budi", "budi@example.com"))

		rows, err := repo.MissingClockIn(ctx, date)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Budi", rows[0].FullName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing clock out carries clock in time", func(t *testing.T) {
		repo, mock := setupRepo(t)

		mock.ExpectQuery(`SELECT users\.\*, ci\.clock_time AS clock_in_time FROM "users" JOIN attendances ci`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "clock_in_time"}).
				AddRow("6f1d3c3e-8f0c-4c53-9b0e-0c8f5d5b8a11", "Sari", "sari@example.com", "07:42"))

		rows, err := repo.MissingClockOut(ctx, date)

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Sari", rows[0].FullName)
		assert.Equal(t, "07:42", rows[0].ClockInTime)
	})
}
