package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tregobbi/backoffice-service/internal/domain"
	"github.com/tregobbi/backoffice-service/internal/reconcile"
)

// PostgresClosureRepository implements ClosureRepository using PostgreSQL
type PostgresClosureRepository struct {
	db *pgxpool.Pool
}

// NewPostgresClosureRepository creates a new PostgreSQL closure repository
func NewPostgresClosureRepository(db *pgxpool.Pool) *PostgresClosureRepository {
	return &PostgresClosureRepository{
		db: db,
	}
}

const closureColumns = `
	date, corrispettivi, iva_10, iva_22, fatture,
	cash_final, pos, sella, stripe_pay, bonifici, mance,
	note, is_closed, created_by, created_at, updated_at
`

// Upsert creates or replaces the closure keyed by its date. The derived
// total_receipts and cash_diff columns are recomputed here so external
// reporting queries stay consistent with the reconciliation rules; reads
// always re-derive from the raw fields.
func (r *PostgresClosureRepository) Upsert(ctx context.Context, closure *domain.DailyClosure) (*domain.DailyClosure, error) {
	totalReceipts := reconcile.TotalReceipts(*closure)
	cashDiff := reconcile.CashDiff(*closure)

	err := r.db.QueryRow(ctx, `
		INSERT INTO daily_closures (
			date, corrispettivi, iva_10, iva_22, fatture,
			cash_final, pos, sella, stripe_pay, bonifici, mance,
			total_receipts, cash_diff, note, is_closed, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (date) DO UPDATE SET
			corrispettivi = EXCLUDED.corrispettivi,
			iva_10 = EXCLUDED.iva_10,
			iva_22 = EXCLUDED.iva_22,
			fatture = EXCLUDED.fatture,
			cash_final = EXCLUDED.cash_final,
			pos = EXCLUDED.pos,
			sella = EXCLUDED.sella,
			stripe_pay = EXCLUDED.stripe_pay,
			bonifici = EXCLUDED.bonifici,
			mance = EXCLUDED.mance,
			total_receipts = EXCLUDED.total_receipts,
			cash_diff = EXCLUDED.cash_diff,
			note = EXCLUDED.note,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`,
		closure.Date, closure.Corrispettivi, closure.IVA10, closure.IVA22, closure.Fatture,
		closure.CashFinal, closure.POS, closure.Sella, closure.StripePay, closure.Bonifici, closure.Mance,
		totalReceipts, cashDiff, closure.Note, closure.IsClosed, closure.CreatedBy,
	).Scan(&closure.CreatedAt, &closure.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert daily closure: %w", err)
	}

	return closure, nil
}

// GetByDate retrieves the closure for a calendar date
func (r *PostgresClosureRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyClosure, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM daily_closures
		WHERE date = $1
	`, closureColumns), date)

	closure, err := scanClosure(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("closure for %s: %w", date.Format("2006-01-02"), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get daily closure: %w", err)
	}

	return closure, nil
}

// ListMonth retrieves all recorded closures of a calendar month ordered by date
func (r *PostgresClosureRepository) ListMonth(ctx context.Context, year, month int) ([]domain.DailyClosure, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM daily_closures
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date
	`, closureColumns), year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly closures: %w", err)
	}
	defer rows.Close()

	return collectClosures(rows)
}

// ListYear retrieves all recorded closures of a calendar year ordered by date
func (r *PostgresClosureRepository) ListYear(ctx context.Context, year int) ([]domain.DailyClosure, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM daily_closures
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`, closureColumns), year)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly closures: %w", err)
	}
	defer rows.Close()

	return collectClosures(rows)
}

// DeleteByDate deletes the closure for a date
func (r *PostgresClosureRepository) DeleteByDate(ctx context.Context, date time.Time) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM daily_closures WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete daily closure: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("closure for %s: %w", date.Format("2006-01-02"), ErrNotFound)
	}

	return nil
}

func scanClosure(row pgx.Row) (*domain.DailyClosure, error) {
	var c domain.DailyClosure
	err := row.Scan(
		&c.Date, &c.Corrispettivi, &c.IVA10, &c.IVA22, &c.Fatture,
		&c.CashFinal, &c.POS, &c.Sella, &c.StripePay, &c.Bonifici, &c.Mance,
		&c.Note, &c.IsClosed, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectClosures(rows pgx.Rows) ([]domain.DailyClosure, error) {
	closures := []domain.DailyClosure{}
	for rows.Next() {
		closure, err := scanClosure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily closure: %w", err)
		}
		closures = append(closures, *closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily closures: %w", err)
	}

	return closures, nil
}
