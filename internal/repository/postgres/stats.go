package postgres

import (
	"context"
	"database/sql"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price), 0) FROM rentals`).Scan(&stats.TotalRevenue)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&stats.TotalExpenses)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE status = 'active'`).Scan(&stats.ActiveRentals)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE status = 'active' AND end_date < CURRENT_DATE`).Scan(&stats.OverdueRentals)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(CASE WHEN status = 'available' THEN 1 END) FROM scooters`).
		Scan(&stats.TotalScooters, &stats.AvailableScooters)
	if err != nil {
		return nil, err
	}

	stats.NetProfit = stats.TotalRevenue - stats.TotalExpenses
	return stats, nil
}

func (r *statsRepository) GetMonthlyStats(ctx context.Context) ([]domain.MonthlyStat, error) {
	// One row per month of the trailing six, zero-filled for months without
	// any rental or expense.
	query := `
		SELECT
			to_char(date_trunc('month', d)::date, 'Mon') AS month_label,
			(SELECT COALESCE(SUM(total_price), 0) FROM rentals WHERE date_trunc('month', created_at) = date_trunc('month', d)) AS revenue,
			(SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date_trunc('month', date) = date_trunc('month', d)) AS expenses
		FROM generate_series(
			date_trunc('month', CURRENT_DATE) - INTERVAL '5 months',
			date_trunc('month', CURRENT_DATE),
			'1 month'::interval
		) d
		ORDER BY d ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.MonthlyStat
	for rows.Next() {
		var m domain.MonthlyStat
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Expenses); err != nil {
			return nil, err
		}
		stats = append(stats, m)
	}
	return stats, rows.Err()
}

func (r *statsRepository) GetTopScooters(ctx context.Context, limit int32) ([]domain.TopScooter, error) {
	query := `
		SELECT s.id, s.name, s.plate, COUNT(r.id) AS trips, COALESCE(SUM(r.total_price), 0) AS revenue
		FROM scooters s
		JOIN rentals r ON r.scooter_id = s.id
		GROUP BY s.id, s.name, s.plate
		ORDER BY revenue DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.TopScooter
	for rows.Next() {
		var t domain.TopScooter
		if err := rows.Scan(&t.ID, &t.Name, &t.Plate, &t.Trips, &t.Revenue); err != nil {
			return nil, err
		}
		top = append(top, t)
	}
	return top, rows.Err()
}
