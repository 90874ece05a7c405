package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tregobbi/backoffice-service/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ClosureRepository defines the interface for daily closure data operations
type ClosureRepository interface {
	// Upsert creates or replaces the closure for its date. At most one
	// record exists per date; re-submitting a date overwrites prior values.
	Upsert(ctx context.Context, closure *domain.DailyClosure) (*domain.DailyClosure, error)

	// GetByDate returns the closure for a date, or ErrNotFound.
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyClosure, error)

	// ListMonth returns the recorded closures of a calendar month, ordered
	// by date. Days without a record are simply absent.
	ListMonth(ctx context.Context, year, month int) ([]domain.DailyClosure, error)

	// ListYear returns the recorded closures of a calendar year, ordered by date.
	ListYear(ctx context.Context, year int) ([]domain.DailyClosure, error)

	// DeleteByDate removes the closure for a date, or returns ErrNotFound.
	DeleteByDate(ctx context.Context, date time.Time) error
}
