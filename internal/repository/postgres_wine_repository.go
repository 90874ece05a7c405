package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tregobbi/backoffice-service/internal/domain"
)

// PostgresWineRepository implements WineRepository using PostgreSQL
type PostgresWineRepository struct {
	db *pgxpool.Pool
}

// NewPostgresWineRepository creates a new PostgreSQL wine repository
func NewPostgresWineRepository(db *pgxpool.Pool) *PostgresWineRepository {
	return &PostgresWineRepository{
		db: db,
	}
}

// CreateWine saves a new wine item to the database
func (r *PostgresWineRepository) CreateWine(ctx context.Context, item *domain.WineItem) (*domain.WineItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO wine_items (id, description, producer, vintage, format, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, item.ID, item.Description, item.Producer, item.Vintage, item.Format, item.Price, item.Quantity).Scan(
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert wine item: %w", err)
	}

	return item, nil
}

// GetWineByID retrieves a wine item by its ID
func (r *PostgresWineRepository) GetWineByID(ctx context.Context, id string) (*domain.WineItem, error) {
	var item domain.WineItem
	err := r.db.QueryRow(ctx, `
		SELECT id, description, producer, vintage, format, price, quantity, created_at, updated_at
		FROM wine_items
		WHERE id = $1
	`, id).Scan(
		&item.ID, &item.Description, &item.Producer, &item.Vintage, &item.Format,
		&item.Price, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wine item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wine item: %w", err)
	}

	return &item, nil
}

// UpdateWine updates an existing wine item
func (r *PostgresWineRepository) UpdateWine(ctx context.Context, item *domain.WineItem) (*domain.WineItem, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE wine_items
		SET description = $1, producer = $2, vintage = $3, format = $4, price = $5, quantity = $6,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`, item.Description, item.Producer, item.Vintage, item.Format, item.Price, item.Quantity, item.ID).Scan(
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wine item %s: %w", item.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update wine item: %w", err)
	}

	return item, nil
}

// DeleteWine deletes a wine item by its ID
func (r *PostgresWineRepository) DeleteWine(ctx context.Context, id string) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM wine_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wine item: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("wine item %s: %w", id, ErrNotFound)
	}

	return nil
}

// ListWines retrieves a paginated, optionally filtered list of wine items
func (r *PostgresWineRepository) ListWines(ctx context.Context, filter domain.WineFilter) (*domain.PaginatedWines, error) {
	whereClause := ""
	args := []interface{}{}

	if filter.Search != "" {
		whereClause = "WHERE description ILIKE $1 OR producer ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	// Count matching items first for pagination metadata
	var totalItems int
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT COUNT(*) FROM wine_items %s
	`, whereClause), args...).Scan(&totalItems)
	if err != nil {
		return nil, fmt.Errorf("failed to count wine items: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	limitArgs := append(args, filter.Limit, offset)

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT id, description, producer, vintage, format, price, quantity, created_at, updated_at
		FROM wine_items
		%s
		ORDER BY description, producer, vintage
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2), limitArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wine items: %w", err)
	}
	defer rows.Close()

	items, err := collectWines(rows)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(filter.Limit)))

	return &domain.PaginatedWines{
		Data: items,
		Pagination: domain.Pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: filter.Page,
			Limit:       filter.Limit,
		},
	}, nil
}

// ListAllWines retrieves the full inventory ordered by description
func (r *PostgresWineRepository) ListAllWines(ctx context.Context) ([]domain.WineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, description, producer, vintage, format, price, quantity, created_at, updated_at
		FROM wine_items
		ORDER BY description, producer, vintage
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query wine items: %w", err)
	}
	defer rows.Close()

	return collectWines(rows)
}

func collectWines(rows pgx.Rows) ([]domain.WineItem, error) {
	items := []domain.WineItem{}
	for rows.Next() {
		var item domain.WineItem
		if err := rows.Scan(
			&item.ID, &item.Description, &item.Producer, &item.Vintage, &item.Format,
			&item.Price, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wine item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wine items: %w", err)
	}

	return items, nil
}
