package service

import (
	"context"
	"fmt"

	"github.com/tregobbi/backoffice-service/internal/domain"
	"github.com/tregobbi/backoffice-service/internal/inventory"
	"github.com/tregobbi/backoffice-service/internal/repository"
)

// WineService defines the interface for wine cellar business logic
type WineService interface {
	// CreateWine stores a new item. Unless confirmDuplicate is set, a
	// candidate clashing with existing items is rejected and the matches
	// returned, so the caller can ask the operator to confirm.
	CreateWine(ctx context.Context, item *domain.WineItem, confirmDuplicate bool) (*domain.WineItem, []domain.WineItem, error)

	GetWineByID(ctx context.Context, id string) (*domain.WineItem, error)
	UpdateWine(ctx context.Context, item *domain.WineItem) (*domain.WineItem, error)
	DeleteWine(ctx context.Context, id string) error
	ListWines(ctx context.Context, filter domain.WineFilter) (*domain.PaginatedWines, error)
}

// WineServiceImpl implements the WineService interface
type WineServiceImpl struct {
	repository repository.WineRepository
}

// NewWineService creates a new WineService
func NewWineService(repo repository.WineRepository) WineService {
	return &WineServiceImpl{repository: repo}
}

// CreateWine stores a new wine item after duplicate screening. The matching
// itself is pure; only this boundary decides whether to proceed.
func (s *WineServiceImpl) CreateWine(ctx context.Context, item *domain.WineItem, confirmDuplicate bool) (*domain.WineItem, []domain.WineItem, error) {
	if !confirmDuplicate {
		existing, err := s.repository.ListAllWines(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to screen for duplicates: %w", err)
		}

		if matches := inventory.FindDuplicates(*item, existing); len(matches) > 0 {
			return nil, matches, nil
		}
	}

	created, err := s.repository.CreateWine(ctx, item)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create wine item: %w", err)
	}
	return created, nil, nil
}

// GetWineByID retrieves one wine item
func (s *WineServiceImpl) GetWineByID(ctx context.Context, id string) (*domain.WineItem, error) {
	return s.repository.GetWineByID(ctx, id)
}

// UpdateWine updates an existing wine item
func (s *WineServiceImpl) UpdateWine(ctx context.Context, item *domain.WineItem) (*domain.WineItem, error) {
	return s.repository.UpdateWine(ctx, item)
}

// DeleteWine deletes a wine item
func (s *WineServiceImpl) DeleteWine(ctx context.Context, id string) error {
	return s.repository.DeleteWine(ctx, id)
}

// ListWines retrieves a paginated list of wine items
func (s *WineServiceImpl) ListWines(ctx context.Context, filter domain.WineFilter) (*domain.PaginatedWines, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repository.ListWines(ctx, filter)
}
