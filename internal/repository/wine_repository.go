package repository

import (
	"context"

	"github.com/tregobbi/backoffice-service/internal/domain"
)

// WineRepository defines the interface for wine cellar data operations
type WineRepository interface {
	// Wine item CRUD operations
	CreateWine(ctx context.Context, item *domain.WineItem) (*domain.WineItem, error)
	GetWineByID(ctx context.Context, id string) (*domain.WineItem, error)
	UpdateWine(ctx context.Context, item *domain.WineItem) (*domain.WineItem, error)
	DeleteWine(ctx context.Context, id string) error

	// Wine item querying operations
	ListWines(ctx context.Context, filter domain.WineFilter) (*domain.PaginatedWines, error)

	// ListAllWines returns the full inventory, used for duplicate matching
	ListAllWines(ctx context.Context) ([]domain.WineItem, error)
}
