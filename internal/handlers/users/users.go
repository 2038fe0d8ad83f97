package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/internal/dto"
	"github.com/GlebRadaev/vending/internal/handlers/apierr"
	"github.com/GlebRadaev/vending/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	Create(ctx context.Context, name, rfidTag string, credits int64) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	AdjustCredits(ctx context.Context, id string, amount int64, operation string) (*domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser godoc
//
//	@Summary		Register a user
//	@Description	Create a user with an RFID tag and an initial credit balance.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User payload"
//	@Success		201		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"RFID tag already registered"
//	@Failure		503		{object}	utils.Response	"Store unavailable"
//	@Router			/api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Create(r.Context(), req.Name, req.RFIDTag, req.Credits)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewUserResponse(user))
}

// GetUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}		dto.UserResponseDTO
//	@Failure	503	{object}	utils.Response	"Store unavailable"
//	@Router		/api/users [get]
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for i := range users {
		response = append(response, dto.NewUserResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUser godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	503		{object}	utils.Response	"Store unavailable"
//	@Router		/api/users/{userID} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.FindByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// UpdateCredits godoc
//
//	@Summary		Change a user's credits
//	@Description	Set, add or subtract credits. A subtraction below zero is refused.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string						true	"User ID"
//	@Param			request	body		dto.UpdateCreditsRequestDTO	true	"Credit change"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid credits or operation"
//	@Failure		402		{object}	utils.Response	"Insufficient credits"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		503		{object}	utils.Response	"Store unavailable"
//	@Router			/api/users/{userID}/credits [put]
func (h *UserHandler) UpdateCredits(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCreditsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Credits == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "credits is required")
		return
	}

	user, err := h.userService.AdjustCredits(r.Context(), chi.URLParam(r, "userID"), *req.Credits, req.Operation)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}
