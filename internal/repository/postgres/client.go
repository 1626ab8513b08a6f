package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// clientColumns carries the correlated current_scooter lookup: the scooter
// name on the client's most recent active rental.
const clientColumns = `c.id, c.full_name, c.document_id, c.phone,
	COALESCE((
		SELECT s.name FROM rentals r
		JOIN scooters s ON r.scooter_id = s.id
		WHERE r.client_id = c.id AND r.status = 'active'
		ORDER BY r.created_at DESC LIMIT 1
	), '') AS current_scooter,
	c.created_at, c.updated_at`

func scanClient(row rowScanner) (*domain.Client, error) {
	c := &domain.Client{}
	err := row.Scan(&c.ID, &c.FullName, &c.DocumentID, &c.Phone, &c.CurrentScooter, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients c ORDER BY c.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients c WHERE c.id = $1`
	c, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (full_name, document_id, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.FullName, c.DocumentID, c.Phone, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET full_name=$1, document_id=$2, phone=$3, updated_at=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, c.FullName, c.DocumentID, c.Phone, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) UpsertByDocumentID(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (full_name, document_id, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (document_id)
	          DO UPDATE SET full_name = EXCLUDED.full_name, phone = EXCLUDED.phone, updated_at = EXCLUDED.updated_at
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.FullName, c.DocumentID, c.Phone, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *clientRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
