package model

import (
	"github.com/tregobbi/backoffice-service/internal/domain"
)

// WineRequest is the payload for creating or updating a wine item
type WineRequest struct {
	Description string     `json:"description" binding:"required"`
	Producer    string     `json:"producer"`
	Vintage     int        `json:"vintage" binding:"omitempty,gte=1900,lte=2100"`
	Format      string     `json:"format"`
	Price       FlexAmount `json:"price"`
	Quantity    int        `json:"quantity" binding:"gte=0"`

	// ConfirmDuplicate stores the item even when it matches existing ones.
	ConfirmDuplicate bool `json:"confirmDuplicate"`
}

// ToDomain converts the request to a domain wine item
func (r *WineRequest) ToDomain() *domain.WineItem {
	return &domain.WineItem{
		Description: r.Description,
		Producer:    r.Producer,
		Vintage:     r.Vintage,
		Format:      r.Format,
		Price:       r.Price.Decimal,
		Quantity:    r.Quantity,
	}
}

// DuplicateWineResponse reports the existing items a candidate clashed with
type DuplicateWineResponse struct {
	Message    string            `json:"message"`
	Duplicates []domain.WineItem `json:"duplicates"`
}
