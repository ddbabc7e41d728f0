package get_slot_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
	getSlotGrid "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

const (
	msgMissingStoreID     = "storeId is required"
	msgInvalidQuery       = "invalid query: date must be YYYY-MM-DD, fresh must be a boolean"
	msgStoreNotFound      = "store not found"
	msgBackendUnavailable = "booking backend is unavailable, try again later"
)

type Handler struct {
	useCase GetSlotGridUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase GetSlotGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/stores/{storeId}/slot-grid
// Query params: date (YYYY-MM-DD, по умолчанию сегодня), sport, fresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	if storeID == "" {
		h.logger.Warn("GET /stores/{id}/slot-grid - Missing store ID")
		handlers.RespondBadRequest(w, msgMissingStoreID)
		return
	}

	q := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(storeID, q.Get("date"), q.Get("sport"), q.Get("fresh"), h.now())
	if err != nil {
		h.logger.Warn("GET /stores/{id}/slot-grid - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlotGrid.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/slot-grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getSlotGrid.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/slot-grid - Store not found: store_id=%s", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, getSlotGrid.ErrBackendUnavailable):
			h.logger.Error("GET /stores/{id}/slot-grid - Backend unavailable: store_id=%s, error=%v", storeID, err)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /stores/{id}/slot-grid - Failed to get grid: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/slot-grid - Grid returned: store_id=%s, date=%s, source=%s, stale=%v",
		storeID, result.Grid.Key.Date, result.Source, result.Grid.Stale)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
