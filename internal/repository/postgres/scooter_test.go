package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"scooter-backoffice/internal/domain"
)

func TestScooterRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewScooterRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "slug", "name", "image", "engine", "speed", "price", "status", "plate",
			"quantity", "maintenance_count", "available_count", "last_maintenance", "created_at", "updated_at"}).
			AddRow(1, "city-cruiser", "City Cruiser", "", "250W", "25 km/h", 80.0, "available", "SC-001",
				3, 1, 1, "2025-05-01", time.Now(), time.Now())

		mock.ExpectQuery(`FROM scooters s WHERE s\.id = \$1`).
			WithArgs(int32(1)).
			WillReturnRows(rows)

		scooter, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, scooter)
		assert.Equal(t, "City Cruiser", scooter.Name)
		assert.Equal(t, int32(1), scooter.AvailableCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM scooters s WHERE s\.id = \$1`).
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrScooterNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScooterRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewScooterRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM scooters").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrScooterNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
