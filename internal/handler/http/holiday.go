package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/holiday"
	"github.com/traincore/schedule-backend-go/internal/handler/http/response"
	holidayService "github.com/traincore/schedule-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	calendar *holidayService.CalendarService
}

func NewHolidayHandler(calendar *holidayService.CalendarService) HolidayHandler {
	return &HolidayHandlerImpl{calendar: calendar}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.calendar.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created", holiday.ToResponse(created))
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.calendar.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, item := range holidays {
		out = append(out, holiday.ToResponse(item))
	}
	response.Success(w, out)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.calendar.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}
