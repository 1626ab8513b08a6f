package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type scooterRepository struct {
	db *sql.DB
}

func NewScooterRepository(db *sql.DB) repository.ScooterRepository {
	return &scooterRepository{db: db}
}

// scooterColumns is the single projection every scooter read path uses, so
// the row mapper below cannot drift per call site.
const scooterColumns = `s.id, s.slug, s.name, s.image, s.engine, s.speed, s.price, s.status, s.plate,
	s.quantity, s.maintenance_count,
	s.quantity - s.maintenance_count - (SELECT COUNT(*) FROM rentals r WHERE r.scooter_id = s.id AND r.status = 'active') AS available_count,
	COALESCE(to_char(s.last_maintenance, 'YYYY-MM-DD'), '') AS last_maintenance,
	s.created_at, s.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScooter(row rowScanner) (*domain.Scooter, error) {
	s := &domain.Scooter{}
	err := row.Scan(&s.ID, &s.Slug, &s.Name, &s.Image, &s.Engine, &s.Speed, &s.Price, &s.Status, &s.Plate,
		&s.Quantity, &s.MaintenanceCount, &s.AvailableCount, &s.LastMaintenance, &s.CreatedOn, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scooterRepository) Create(ctx context.Context, s *domain.Scooter) error {
	query := `INSERT INTO scooters (slug, name, image, engine, speed, price, status, plate, quantity, maintenance_count, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.Slug, s.Name, s.Image, s.Engine, s.Speed, s.Price, s.Status, s.Plate,
		s.Quantity, s.MaintenanceCount, time.Now(), time.Now()).Scan(&s.ID)
}

func (r *scooterRepository) GetByID(ctx context.Context, id int32) (*domain.Scooter, error) {
	query := `SELECT ` + scooterColumns + ` FROM scooters s WHERE s.id = $1`
	s, err := scanScooter(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrScooterNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scooterRepository) List(ctx context.Context) ([]domain.Scooter, error) {
	query := `SELECT ` + scooterColumns + ` FROM scooters s ORDER BY s.created_at DESC`
	return r.queryScooters(ctx, query)
}

func (r *scooterRepository) Search(ctx context.Context, term string) ([]domain.Scooter, error) {
	query := `SELECT ` + scooterColumns + ` FROM scooters s
	          WHERE s.name ILIKE $1 OR s.plate ILIKE $1 ORDER BY s.name ASC`
	return r.queryScooters(ctx, query, "%"+term+"%")
}

func (r *scooterRepository) queryScooters(ctx context.Context, query string, args ...any) ([]domain.Scooter, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scooters []domain.Scooter
	for rows.Next() {
		s, err := scanScooter(rows)
		if err != nil {
			return nil, err
		}
		scooters = append(scooters, *s)
	}
	return scooters, rows.Err()
}

func (r *scooterRepository) Update(ctx context.Context, s *domain.Scooter) error {
	query := `UPDATE scooters
	          SET slug=$1, name=$2, image=$3, engine=$4, speed=$5, price=$6, status=$7, plate=$8,
	              quantity=$9, last_maintenance=NULLIF($10, '')::date, updated_at=$11
	          WHERE id=$12`
	res, err := r.db.ExecContext(ctx, query, s.Slug, s.Name, s.Image, s.Engine, s.Speed, s.Price, s.Status, s.Plate,
		s.Quantity, s.LastMaintenance, time.Now(), s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrScooterNotFound
	}
	return nil
}

func (r *scooterRepository) UpdateStatus(ctx context.Context, id int32, status domain.ScooterStatus) error {
	query := `UPDATE scooters SET status=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrScooterNotFound
	}
	return nil
}

func (r *scooterRepository) SetMaintenanceCount(ctx context.Context, id int32, count int32) error {
	query := `UPDATE scooters SET maintenance_count=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, count, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrScooterNotFound
	}
	return nil
}

func (r *scooterRepository) CountRentals(ctx context.Context, id int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rentals WHERE scooter_id = $1`, id).Scan(&count)
	return count, err
}

func (r *scooterRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scooters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrScooterNotFound
	}
	return nil
}
