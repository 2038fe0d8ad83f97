package apierr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/pkg/utils"
	"go.uber.org/zap"
)

// StatusCode maps a service error to the HTTP status it is reported with.
func StatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindAlreadyExists, domain.KindInvalidTransition:
		return http.StatusConflict
	case domain.KindInsufficientFunds:
		return http.StatusPaymentRequired
	case domain.KindOutOfStock:
		return http.StatusUnprocessableEntity
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error body. Store and unclassified errors are
// logged and their details hidden from the client.
func Respond(w http.ResponseWriter, err error) {
	code := StatusCode(err)

	var e *domain.Error
	if !errors.As(err, &e) || e.Kind == domain.KindStoreUnavailable {
		zap.L().Error("request failed", zap.Int("status", code), zap.Error(err))
		msg := "Internal server error"
		if code == http.StatusServiceUnavailable {
			msg = "Service temporarily unavailable"
		}
		utils.RespondWithError(w, code, msg)
		return
	}

	resp := utils.Response{Message: e.Error(), Code: e.Kind.String()}
	if e.Kind == domain.KindInsufficientFunds {
		resp.Details = map[string]any{"shortfall": e.Shortfall}
	}
	utils.RespondWithJSON(w, code, resp)
}
