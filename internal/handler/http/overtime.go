package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
	"github.com/traincore/schedule-backend-go/internal/handler/http/response"
	"github.com/traincore/schedule-backend-go/internal/pkg/jwt"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.Service
	jwtService      jwt.Service
}

func NewOvertimeHandler(overtimeService overtime.Service, jwtService jwt.Service) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService, jwtService: jwtService}
}

// Submit implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req overtime.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Non-admins may only declare for themselves.
	if req.EmployeeID == "" || !identity.Admin {
		req.EmployeeID = identity.EmployeeID
	}

	created, err := h.overtimeService.SubmitOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Overtime declared", overtime.ToResponse(created))
}

// Get implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Declaration ID is required", nil)
		return
	}

	declaration, err := h.overtimeService.GetDeclaration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, overtime.ToResponse(declaration))
}

// ListForEmployee implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, ok := parseDateParam(r)
	if employeeID == "" || !ok {
		response.BadRequest(w, "Employee ID and date=YYYY-MM-DD are required", nil)
		return
	}

	declarations, err := h.overtimeService.ListDeclarations(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]overtime.DeclarationResponse, 0, len(declarations))
	for _, d := range declarations {
		out = append(out, overtime.ToResponse(d))
	}
	response.Success(w, out)
}

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *OvertimeHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Declaration ID is required", nil)
		return
	}

	decided, err := h.overtimeService.DecideOvertime(r.Context(), overtime.DecideOvertimeRequest{
		DeclarationID: id,
		DeciderID:     identity.EmployeeID,
		Approve:       approve,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Overtime rejected"
	if approve {
		message = "Overtime approved"
	}
	response.SuccessWithMessage(w, message, overtime.ToResponse(decided))
}
