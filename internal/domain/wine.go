package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WineItem represents one wine in the cellar inventory.
type WineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Producer    string          `json:"producer"`
	Vintage     int             `json:"vintage"`
	Format      string          `json:"format"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// WineFilter represents filters for querying wine items
type WineFilter struct {
	Search string
	Page   int
	Limit  int
}

// PaginatedWines represents a paginated list of wine items
type PaginatedWines struct {
	Data       []WineItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination metadata
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}
