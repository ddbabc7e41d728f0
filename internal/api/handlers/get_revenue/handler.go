package get_revenue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	getRevenue "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_revenue"
)

const (
	msgMissingUserID = "user id is required"
	msgInvalidRange  = "from and to are required, format YYYY-MM-DD"
	msgStoreNotFound = "store not found"
)

type Handler struct {
	useCase GetRevenueUseCase
	logger  Logger
}

func NewHandler(useCase GetRevenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/revenue
// Query params: from, to (YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /stores/{id}/revenue - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	q := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(userID, storeID, q.Get("from"), q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /stores/{id}/revenue - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRevenue.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/revenue - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getRevenue.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/revenue - Store not found: store_id=%s", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		default:
			h.logger.Error("GET /stores/{id}/revenue - Failed to get revenue: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/revenue - Revenue retrieved: store_id=%s, total=%d", storeID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
