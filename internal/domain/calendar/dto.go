package calendar

import (
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/pkg/validator"
)

type UpsertHolidayRequest struct {
	Region string `json:"region"`
	Date   string `json:"date"`
	Name   string `json:"name"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Region) {
		errs = append(errs, validator.ValidationError{
			Field:   "region",
			Message: "region is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID     string `json:"id"`
	Region string `json:"region"`
	Date   string `json:"date"`
	Name   string `json:"name"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID,
		Region: h.Region,
		Date:   h.Date.Format(time.DateOnly),
		Name:   h.Name,
	}
}
