package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/handler/http/response"
	"github.com/traincore/schedule-backend-go/internal/pkg/jwt"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
	jwtService   jwt.Service
}

func NewLeaveHandler(leaveService leave.Service, jwtService jwt.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService, jwtService: jwtService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Non-admins may only file for themselves.
	if req.EmployeeID == "" || !identity.Admin {
		req.EmployeeID = identity.EmployeeID
	}

	created, err := h.leaveService.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", leave.ToResponse(created))
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	request, err := h.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToResponse(request))
}

// ListForEmployee implements LeaveHandler.
func (h *LeaveHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	requests, err := h.leaveService.ListLeaveRequests(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, leave.ToResponse(request))
	}
	response.Success(w, out)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	decided, err := h.leaveService.DecideLeave(r.Context(), leave.DecideLeaveRequest{
		RequestID: id,
		DeciderID: identity.EmployeeID,
		Approve:   approve,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave request rejected"
	if approve {
		message = "Leave request approved"
	}
	response.SuccessWithMessage(w, message, leave.ToResponse(decided))
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	cancelled, err := h.leaveService.CancelLeave(r.Context(), leave.CancelLeaveRequest{
		RequestID:     id,
		RequesterID:   identity.EmployeeID,
		AdminOverride: identity.Admin,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request cancelled", leave.ToResponse(cancelled))
}
