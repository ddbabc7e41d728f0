package delete_field_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

const (
	msgMissingUserID   = "user id is required"
	msgPricingNotFound = "pricing not found"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/fields/{fieldId}/pricings/{pricingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldID, pricingID := vars["fieldId"], vars["pricingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /fields/{id}/pricings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Delete(r.Context(), &models.DeleteRequest{
		UserID:    userID,
		FieldID:   fieldID,
		PricingID: pricingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrPricingNotFound):
			h.logger.Warn("DELETE /fields/{id}/pricings/{id} - Not found: field_id=%s, pricing_id=%s", fieldID, pricingID)
			handlers.RespondNotFound(w, msgPricingNotFound)

		case errors.Is(err, pricing.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, pricing.ErrRejected):
			h.logger.Warn("DELETE /fields/{id}/pricings/{id} - Rejected: pricing_id=%s, error=%v", pricingID, err)
			handlers.RespondConflict(w, err.Error())

		default:
			h.logger.Error("DELETE /fields/{id}/pricings/{id} - Failed to delete: pricing_id=%s, error=%v", pricingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/{id}/pricings/{id} - Deleted: field_id=%s, pricing_id=%s, user_id=%s",
		fieldID, pricingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
