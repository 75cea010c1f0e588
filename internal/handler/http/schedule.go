package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	IsWorkingDay(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work schedule created", schedule.ToResponse(created))
}

// ListForEmployee implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	schedules, err := h.scheduleService.ListSchedules(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, schedule.ToResponse(s))
	}
	response.Success(w, out)
}

// GetActive implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, ok := parseDateParam(r)
	if employeeID == "" || !ok {
		response.BadRequest(w, "Employee ID and date=YYYY-MM-DD are required", nil)
		return
	}

	active, err := h.scheduleService.ActiveScheduleFor(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule.ToResponse(active))
}

// IsWorkingDay implements ScheduleHandler.
func (h *ScheduleHandlerImpl) IsWorkingDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, ok := parseDateParam(r)
	if employeeID == "" || !ok {
		response.BadRequest(w, "Employee ID and date=YYYY-MM-DD are required", nil)
		return
	}

	working, err := h.scheduleService.IsWorkingDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"employee_id": employeeID,
		"date":        date.Format("2006-01-02"),
		"working_day": working,
	})
}

func parseDateParam(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
