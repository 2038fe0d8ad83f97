package dto

import (
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
)

type CreateUserRequestDTO struct {
	Name    string `json:"name" example:"Alice"`
	RFIDTag string `json:"rfidTag" example:"RFID-0001"`
	Credits int64  `json:"credits" example:"10"`
}

type UpdateCreditsRequestDTO struct {
	Credits   *int64 `json:"credits" example:"5"`
	Operation string `json:"operation,omitempty" example:"add" enums:"set,add,subtract"`
}

type UserResponseDTO struct {
	ID        string `json:"id" example:"7f1c2a4e-5b8d-4f8e-9c1a-2b3c4d5e6f70"`
	Name      string `json:"name" example:"Alice"`
	RFIDTag   string `json:"rfidTag" example:"RFID-0001"`
	Credits   int64  `json:"credits" example:"10"`
	CreatedAt string `json:"createdAt" example:"2024-05-01T10:00:00Z"`
	UpdatedAt string `json:"updatedAt" example:"2024-05-01T10:00:00Z"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Name:      u.Name,
		RFIDTag:   u.RFIDTag,
		Credits:   u.Credits,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
