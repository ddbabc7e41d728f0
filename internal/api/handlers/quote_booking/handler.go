package quote_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	quoteBooking "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgStoreNotFound      = "store not found"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stores/{storeId}/quote
// Считает цену выбранных слотов. X-User-ID не обязателен.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /stores/{id}/quote - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	if userID == "" {
		userID = r.Header.Get(middleware.UserIDHeader)
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, storeID)
	if err != nil {
		h.logger.Warn("POST /stores/{id}/quote - Invalid request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrInvalidInput),
			errors.Is(err, quoteBooking.ErrEmptySelection),
			errors.Is(err, quoteBooking.ErrDuplicateSlot),
			errors.Is(err, quoteBooking.ErrSlotNotFound):
			h.logger.Warn("POST /stores/{id}/quote - Rejected selection: store_id=%s, error=%v", storeID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quoteBooking.ErrStoreNotFound):
			h.logger.Warn("POST /stores/{id}/quote - Store not found: store_id=%s", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, quoteBooking.ErrFieldNotFound):
			h.logger.Warn("POST /stores/{id}/quote - Field not found: store_id=%s, error=%v", storeID, err)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, quoteBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /stores/{id}/quote - Slot taken: store_id=%s, error=%v", storeID, err)
			handlers.RespondConflict(w, err.Error())

		default:
			h.logger.Error("POST /stores/{id}/quote - Failed to quote: store_id=%s, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stores/{id}/quote - Quoted: store_id=%s, slots=%d, total=%d",
		storeID, len(result.Items), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
