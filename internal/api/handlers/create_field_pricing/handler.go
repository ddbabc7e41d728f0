package create_field_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing"
)

const (
	msgMissingUserID      = "user id is required"
	msgInvalidRequestBody = "invalid request body"
	msgFieldNotFound      = "field not found"
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

// Handle POST /api/v1/fields/{fieldId}/pricings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /fields/{id}/pricings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateFieldPricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/pricings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /fields/{id}/pricings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.CreateDayOfWeek(r.Context(), req.ToServiceRequest(userID, fieldID))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /fields/{id}/pricings - Invalid data: field_id=%s, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, pricing.ErrRejected):
			h.logger.Warn("POST /fields/{id}/pricings - Rejected: field_id=%s, error=%v", fieldID, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, pricing.ErrFieldNotFound):
			h.logger.Warn("POST /fields/{id}/pricings - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("POST /fields/{id}/pricings - Failed to create: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/pricings - Created: field_id=%s, user_id=%s", fieldID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
