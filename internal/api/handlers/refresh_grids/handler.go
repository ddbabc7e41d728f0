package refresh_grids

import (
	"errors"
	"net/http"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/refresher"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgQueueFull          = "refresh already queued, try again later"
)

type Handler struct {
	service RefreshService
	logger  Logger
}

func NewHandler(service RefreshService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/refresh
// Сигнал клиента: вкладка стала видимой, возврат по истории, завершена оплата
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /refresh - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /refresh - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	reason, err := refresher.ParseReason(req.Reason)
	if err != nil {
		h.logger.Warn("POST /refresh - Unknown reason: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if err := h.service.Trigger(reason); err != nil {
		if errors.Is(err, refresher.ErrBusy) {
			h.logger.Warn("POST /refresh - Queue full: reason=%s", reason)
			handlers.RespondError(w, http.StatusTooManyRequests, msgQueueFull)
			return
		}
		h.logger.Error("POST /refresh - Failed to trigger: reason=%s, error=%v", reason, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /refresh - Accepted: reason=%s", reason)
	handlers.RespondJSON(w, http.StatusAccepted, RefreshResponse{Reason: string(reason), Accepted: true})
}
