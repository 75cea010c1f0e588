package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/clock"
	"github.com/traincore/schedule-backend-go/internal/handler/http/response"
)

type ClockHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	SetOverride(w http.ResponseWriter, r *http.Request)
	ClearOverride(w http.ResponseWriter, r *http.Request)
}

type ClockHandlerImpl struct {
	clock clock.Clock
}

func NewClockHandler(clk clock.Clock) ClockHandler {
	return &ClockHandlerImpl{clock: clk}
}

// GetConfig implements ClockHandler.
func (h *ClockHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.clock.Config()
	response.Success(w, map[string]interface{}{
		"config": cfg,
		"now":    h.clock.Now(),
	})
}

type setOverrideRequest struct {
	Instant string `json:"instant"`
}

// SetOverride implements ClockHandler.
func (h *ClockHandlerImpl) SetOverride(w http.ResponseWriter, r *http.Request) {
	var req setOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	instant, err := time.Parse(time.RFC3339, req.Instant)
	if err != nil {
		response.BadRequest(w, "instant must be RFC 3339", nil)
		return
	}

	cfg := h.clock.SetOverride(&instant)
	response.SuccessWithMessage(w, "Clock override set", cfg)
}

// ClearOverride implements ClockHandler.
func (h *ClockHandlerImpl) ClearOverride(w http.ResponseWriter, r *http.Request) {
	cfg := h.clock.SetOverride(nil)
	response.SuccessWithMessage(w, "Clock override cleared", cfg)
}
