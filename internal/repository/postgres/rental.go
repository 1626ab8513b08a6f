package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `r.id, r.scooter_id, r.client_id,
	to_char(r.start_date, 'YYYY-MM-DD'), to_char(r.end_date, 'YYYY-MM-DD'),
	r.total_price, r.amount_paid, r.status, r.payment_status, r.payment_method,
	r.has_guarantee, r.deposit_amount, r.notes, r.created_at, r.updated_at,
	s.name, s.plate, c.full_name, c.phone, c.document_id`

const rentalJoins = ` FROM rentals r
	JOIN scooters s ON r.scooter_id = s.id
	JOIN clients c ON r.client_id = c.id`

func scanRental(row rowScanner) (*domain.RentalWithDetails, error) {
	rt := &domain.RentalWithDetails{}
	err := row.Scan(&rt.ID, &rt.ScooterID, &rt.ClientID, &rt.StartDate, &rt.EndDate,
		&rt.TotalPrice, &rt.AmountPaid, &rt.Status, &rt.PaymentStatus, &rt.PaymentMethod,
		&rt.HasGuarantee, &rt.DepositAmount, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn,
		&rt.ScooterName, &rt.ScooterPlate, &rt.ClientName, &rt.ClientPhone, &rt.ClientDocumentID)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// CreateActive books a rental and flips the scooter to rented in one
// transaction. The scooter row is locked first so two concurrent bookings of
// the last free unit cannot both pass the guard.
func (r *rentalRepository) CreateActive(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var quantity, maintenance int32
	err = tx.QueryRowContext(ctx,
		`SELECT quantity, maintenance_count FROM scooters WHERE id = $1 FOR UPDATE`,
		rt.ScooterID).Scan(&quantity, &maintenance)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrScooterNotFound
	}
	if err != nil {
		return err
	}

	var active int32
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE scooter_id = $1 AND status = 'active'`,
		rt.ScooterID).Scan(&active)
	if err != nil {
		return err
	}
	if quantity-maintenance-active <= 0 {
		return domain.ErrScooterUnavailable
	}

	query := `INSERT INTO rentals (scooter_id, client_id, start_date, end_date, total_price, amount_paid,
	          status, payment_status, payment_method, has_guarantee, deposit_amount, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	err = tx.QueryRowContext(ctx, query, rt.ScooterID, rt.ClientID, rt.StartDate, rt.EndDate,
		rt.TotalPrice, rt.AmountPaid, domain.RentalStatusActive, rt.PaymentStatus, rt.PaymentMethod,
		rt.HasGuarantee, rt.DepositAmount, rt.Notes, time.Now(), time.Now()).Scan(&rt.ID)
	if err != nil {
		return err
	}
	rt.Status = domain.RentalStatusActive

	_, err = tx.ExecContext(ctx,
		`UPDATE scooters SET status = 'rented', updated_at = $1 WHERE id = $2`,
		time.Now(), rt.ScooterID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.RentalWithDetails, error) {
	query := `SELECT ` + rentalColumns + rentalJoins + ` WHERE r.id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals
	          SET start_date=$1, end_date=$2, total_price=$3, amount_paid=$4,
	              payment_status=$5, payment_method=$6, has_guarantee=$7, deposit_amount=$8, notes=$9, updated_at=$10
	          WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query, rt.StartDate, rt.EndDate, rt.TotalPrice, rt.AmountPaid,
		rt.PaymentStatus, rt.PaymentMethod, rt.HasGuarantee, rt.DepositAmount, rt.Notes, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) Complete(ctx context.Context, id int32) error {
	return r.transition(ctx, id, domain.RentalStatusActive, domain.RentalStatusCompleted)
}

func (r *rentalRepository) Revert(ctx context.Context, id int32) error {
	return r.transition(ctx, id, domain.RentalStatusCompleted, domain.RentalStatusActive)
}

// transition flips a rental between active and completed and keeps the
// scooter flag in sync inside the same transaction. The scooter ends up
// rented when it still has at least one active rental, available otherwise.
func (r *rentalRepository) transition(ctx context.Context, id int32, from, to domain.RentalStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var scooterID int32
	var status domain.RentalStatus
	err = tx.QueryRowContext(ctx,
		`SELECT scooter_id, status FROM rentals WHERE id = $1 FOR UPDATE`, id).Scan(&scooterID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRentalNotFound
	}
	if err != nil {
		return err
	}
	if status != from {
		if from == domain.RentalStatusActive {
			return domain.ErrRentalNotActive
		}
		return domain.ErrRentalNotCompleted
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rentals SET status = $1, updated_at = $2 WHERE id = $3`, to, time.Now(), id)
	if err != nil {
		return err
	}

	if err := syncScooterStatus(ctx, tx, scooterID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var scooterID int32
	var status domain.RentalStatus
	err = tx.QueryRowContext(ctx,
		`SELECT scooter_id, status FROM rentals WHERE id = $1 FOR UPDATE`, id).Scan(&scooterID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRentalNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id); err != nil {
		return err
	}

	// Deleting a completed rental leaves the scooter untouched.
	if status == domain.RentalStatusActive {
		if err := syncScooterStatus(ctx, tx, scooterID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// syncScooterStatus rewrites the scooter flag from the surviving active
// rentals: rented when at least one active rental references the scooter,
// available otherwise. Rows parked in maintenance are left alone.
func syncScooterStatus(ctx context.Context, tx *sql.Tx, scooterID int32) error {
	var active int32
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE scooter_id = $1 AND status = 'active'`, scooterID).Scan(&active)
	if err != nil {
		return err
	}

	status := domain.ScooterStatusAvailable
	if active > 0 {
		status = domain.ScooterStatusRented
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE scooters SET status = $1, updated_at = $2 WHERE id = $3 AND status <> 'maintenance'`,
		status, time.Now(), scooterID)
	return err
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalWithDetails, error) {
	query := `SELECT ` + rentalColumns + rentalJoins + ` ORDER BY r.created_at DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.RentalWithDetails, error) {
	query := `SELECT ` + rentalColumns + rentalJoins + ` WHERE r.status = 'active' ORDER BY r.start_date ASC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListCompleted(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error) {
	query := `SELECT ` + rentalColumns + rentalJoins + ` WHERE r.status = 'completed' ORDER BY r.end_date DESC LIMIT $1`
	return r.queryRentals(ctx, query, limit)
}

func (r *rentalRepository) ListLatest(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error) {
	query := `SELECT ` + rentalColumns + rentalJoins + ` ORDER BY r.created_at DESC LIMIT $1`
	return r.queryRentals(ctx, query, limit)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.RentalWithDetails, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rentals: %w", err)
	}
	defer rows.Close()

	var rentals []domain.RentalWithDetails
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
