package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/middleware"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalance(w http.ResponseWriter, r *http.Request)

	CreateAbsence(w http.ResponseWriter, r *http.Request)
	GetAbsence(w http.ResponseWriter, r *http.Request)
	ListMyAbsences(w http.ResponseWriter, r *http.Request)
	ListPendingAbsences(w http.ResponseWriter, r *http.Request)
	ApproveAbsence(w http.ResponseWriter, r *http.Request)
	RejectAbsence(w http.ResponseWriter, r *http.Request)
	CancelAbsence(w http.ResponseWriter, r *http.Request)

	UpsertEntitlementRule(w http.ResponseWriter, r *http.Request)
	ListEntitlementRules(w http.ResponseWriter, r *http.Request)
	UpsertCarryOver(w http.ResponseWriter, r *http.Request)
	GetCarryOver(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// yearParam reads the year query parameter, defaulting to the current year.
func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

// GetMyBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year parameter", nil)
		return
	}

	balance, err := l.leaveService.GetBalanceByEmployeeID(r.Context(), middleware.EmployeeID(r.Context()), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToBalanceResponse(balance))
}

// GetEmployeeBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetEmployeeBalance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year parameter", nil)
		return
	}

	balance, err := l.leaveService.GetBalanceByCode(r.Context(), code, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToBalanceResponse(balance))
}

// CreateAbsence implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.leaveService.SubmitAbsence(r.Context(), middleware.EmployeeID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence request submitted", created)
}

// GetAbsence implements LeaveHandler.
func (l *LeaveHandlerImpl) GetAbsence(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Absence request ID is required", nil)
		return
	}

	ctx := r.Context()
	absence, err := l.leaveService.GetAbsence(ctx, requestID, middleware.EmployeeID(ctx), middleware.IsAdmin(ctx))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absence)
}

// ListMyAbsences implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMyAbsences(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	absences, err := l.leaveService.ListMyAbsences(r.Context(), middleware.EmployeeID(r.Context()), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// ListPendingAbsences implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPendingAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := l.leaveService.ListPendingAbsences(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// ApproveAbsence implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveAbsence(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Absence request ID is required", nil)
		return
	}

	if err := l.leaveService.ApproveAbsence(r.Context(), requestID, middleware.EmployeeID(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence request approved", nil)
}

// RejectAbsence implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectAbsence(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Absence request ID is required", nil)
		return
	}

	var req leave.RejectAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.RejectAbsence(r.Context(), requestID, middleware.EmployeeID(r.Context()), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence request rejected", nil)
}

// CancelAbsence implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelAbsence(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Absence request ID is required", nil)
		return
	}

	var req leave.CancelAbsenceRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("CancelAbsence decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	ctx := r.Context()
	if err := l.leaveService.CancelAbsence(ctx, requestID, middleware.EmployeeID(ctx), middleware.IsAdmin(ctx), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence request cancelled", nil)
}

// UpsertEntitlementRule implements LeaveHandler.
func (l *LeaveHandlerImpl) UpsertEntitlementRule(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertEntitlementRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertEntitlementRule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rule, err := l.leaveService.UpsertEntitlementRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entitlement rule saved", rule)
}

// ListEntitlementRules implements LeaveHandler.
func (l *LeaveHandlerImpl) ListEntitlementRules(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year parameter", nil)
		return
	}

	rules, err := l.leaveService.ListEntitlementRules(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// UpsertCarryOver implements LeaveHandler.
func (l *LeaveHandlerImpl) UpsertCarryOver(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertCarryOverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertCarryOver decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	carryOver, err := l.leaveService.UpsertCarryOver(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Carry-over saved", carryOver)
}

// GetCarryOver implements LeaveHandler.
func (l *LeaveHandlerImpl) GetCarryOver(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year parameter", nil)
		return
	}

	days, err := l.leaveService.GetCarryOver(r.Context(), code, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"employee_code": code,
		"year":          year,
		"days":          days,
	})
}
