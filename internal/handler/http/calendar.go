package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionahr/gestion-backend-go/internal/domain/calendar"
	"github.com/gestionahr/gestion-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	UpsertHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// UpsertHoliday implements CalendarHandler.
func (c *CalendarHandlerImpl) UpsertHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpsertHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	holiday, err := c.calendarService.UpsertHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday saved", holiday)
}

// ListHolidays implements CalendarHandler.
func (c *CalendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		response.BadRequest(w, "Region is required", nil)
		return
	}
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year parameter", nil)
		return
	}

	holidays, err := c.calendarService.ListHolidays(r.Context(), region, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
