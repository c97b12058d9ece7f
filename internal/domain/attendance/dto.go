package attendance

import (
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	Source string `json:"source,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Source != "" && !validator.IsInSlice(r.Source, []string{
		string(SourceWeb), string(SourceMobile), string(SourceManual),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: web, mobile, manual",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FichajeResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      *string `json:"clock_out,omitempty"`
	Source        string  `json:"source"`
	WorkedMinutes int     `json:"worked_minutes"`
}

func ToResponse(f Fichaje) FichajeResponse {
	resp := FichajeResponse{
		ID:            f.ID,
		EmployeeCode:  f.EmployeeCode,
		ClockIn:       f.ClockIn.Format(time.RFC3339),
		Source:        string(f.Source),
		WorkedMinutes: f.WorkedMinutes(),
	}
	if f.ClockOut != nil {
		out := f.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
