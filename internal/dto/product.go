package dto

import (
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
)

type CreateProductRequestDTO struct {
	Name       string `json:"name" example:"Cola"`
	Price      int64  `json:"price" example:"5"`
	SlotNumber int    `json:"slotNumber" example:"1" enums:"1,2"`
	Stock      int64  `json:"stock" example:"10"`
}

// UpdateProductRequestDTO is a partial update; absent fields are kept.
type UpdateProductRequestDTO struct {
	Name  *string `json:"name,omitempty" example:"Cola Zero"`
	Price *int64  `json:"price,omitempty" example:"6"`
	Stock *int64  `json:"stock,omitempty" example:"12"`
}

type ProductResponseDTO struct {
	ID         string `json:"id" example:"3d6f0b8a-1c2e-4a5b-8d9e-0f1a2b3c4d5e"`
	Name       string `json:"name" example:"Cola"`
	Price      int64  `json:"price" example:"5"`
	SlotNumber int    `json:"slotNumber" example:"1"`
	Stock      int64  `json:"stock" example:"10"`
	CreatedAt  string `json:"createdAt" example:"2024-05-01T10:00:00Z"`
	UpdatedAt  string `json:"updatedAt" example:"2024-05-01T10:00:00Z"`
}

func NewProductResponse(p *domain.Product) ProductResponseDTO {
	return ProductResponseDTO{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		SlotNumber: p.SlotNumber,
		Stock:      p.Stock,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
