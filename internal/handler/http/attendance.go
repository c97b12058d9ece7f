package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionahr/gestion-backend-go/internal/domain/attendance"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/middleware"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ClockIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	fichaje, err := a.attendanceService.ClockIn(r.Context(), middleware.EmployeeID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", fichaje)
}

// ClockOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	fichaje, err := a.attendanceService.ClockOut(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", fichaje)
}

// ListMine implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	fichajes, err := a.attendanceService.ListMine(r.Context(), middleware.EmployeeID(r.Context()), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, fichajes)
}

// ListByEmployee implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	fichajes, err := a.attendanceService.ListByEmployeeCode(r.Context(), code, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, fichajes)
}
