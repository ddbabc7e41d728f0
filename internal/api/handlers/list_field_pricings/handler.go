package list_field_pricings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
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

// Handle GET /api/v1/fields/{fieldId}/pricings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]

	result, err := h.service.Get(r.Context(), fieldID)
	if err != nil {
		h.logger.Error("GET /fields/{id}/pricings - Failed to get pricings: field_id=%s, error=%v", fieldID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields/{id}/pricings - Pricings retrieved: field_id=%s, count=%d", fieldID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
