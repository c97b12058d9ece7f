package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/gestionahr/gestion-backend-go/internal/domain/leave"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) leave.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// Create implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, req leave.AbsenceRequest) (leave.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absence_requests (
			id, employee_id, leave_type, start_date, end_date,
			reason, status, submitted_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW(), NOW()
		)
		RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		leave.AbsenceStatusPending,
	).Scan(&req.ID, &req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.AbsenceRequest{}, err
	}

	req.Status = leave.AbsenceStatusPending
	return req, nil
}

// GetByID implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (leave.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.leave_type, ar.start_date, ar.end_date,
			   ar.reason, ar.status, ar.approved_by, ar.approved_at, ar.rejection_reason,
			   ar.cancelled_by, ar.cancelled_at, ar.cancellation_reason,
			   ar.submitted_at, ar.created_at, ar.updated_at,
			   e.employee_code, e.full_name
		FROM absence_requests ar
		INNER JOIN employees e ON ar.employee_id = e.id
		WHERE ar.id = $1
	`

	var a leave.AbsenceRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.LeaveType, &a.StartDate, &a.EndDate,
		&a.Reason, &a.Status, &a.ApprovedBy, &a.ApprovedAt, &a.RejectionReason,
		&a.CancelledBy, &a.CancelledAt, &a.CancellationReason,
		&a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeCode, &a.EmployeeName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.AbsenceRequest{}, leave.ErrAbsenceNotFound
	}
	if err != nil {
		return leave.AbsenceRequest{}, err
	}
	return a, nil
}

// GetByIDForUpdate implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date,
			   reason, status, approved_by, approved_at, rejection_reason,
			   cancelled_by, cancelled_at, cancellation_reason,
			   submitted_at, created_at, updated_at
		FROM absence_requests
		WHERE id = $1
		FOR UPDATE
	`

	var a leave.AbsenceRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.LeaveType, &a.StartDate, &a.EndDate,
		&a.Reason, &a.Status, &a.ApprovedBy, &a.ApprovedAt, &a.RejectionReason,
		&a.CancelledBy, &a.CancelledAt, &a.CancellationReason,
		&a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.AbsenceRequest{}, leave.ErrAbsenceNotFound
	}
	if err != nil {
		return leave.AbsenceRequest{}, err
	}
	return a, nil
}

// GetByEmployeeID implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, status string) ([]leave.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date,
			   reason, status, approved_by, approved_at, rejection_reason,
			   cancelled_by, cancelled_at, cancellation_reason,
			   submitted_at, created_at, updated_at
		FROM absence_requests
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// ListByStatus implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) ListByStatus(ctx context.Context, status leave.AbsenceStatus) ([]leave.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.leave_type, ar.start_date, ar.end_date,
			   ar.reason, ar.status, ar.approved_by, ar.approved_at, ar.rejection_reason,
			   ar.cancelled_by, ar.cancelled_at, ar.cancellation_reason,
			   ar.submitted_at, ar.created_at, ar.updated_at,
			   e.employee_code, e.full_name
		FROM absence_requests ar
		INNER JOIN employees e ON ar.employee_id = e.id
		WHERE ar.status = $1
		ORDER BY ar.submitted_at ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.AbsenceRequest, 0)
	for rows.Next() {
		var a leave.AbsenceRequest
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.LeaveType, &a.StartDate, &a.EndDate,
			&a.Reason, &a.Status, &a.ApprovedBy, &a.ApprovedAt, &a.RejectionReason,
			&a.CancelledBy, &a.CancelledAt, &a.CancellationReason,
			&a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeCode, &a.EmployeeName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, a)
	}
	return requests, rows.Err()
}

// GetApprovedInRange implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date,
			   reason, status, approved_by, approved_at, rejection_reason,
			   cancelled_by, cancelled_at, cancellation_reason,
			   submitted_at, created_at, updated_at
		FROM absence_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// UpdateStatus implements leave.AbsenceRepository.
func (r *absenceRepositoryImpl) UpdateStatus(ctx context.Context, req leave.AbsenceRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_requests
		SET status = $2,
			approved_by = $3, approved_at = $4, rejection_reason = $5,
			cancelled_by = $6, cancelled_at = $7, cancellation_reason = $8,
			updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		req.ID, req.Status,
		req.ApprovedBy, req.ApprovedAt, req.RejectionReason,
		req.CancelledBy, req.CancelledAt, req.CancellationReason,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrAbsenceNotFound
	}
	return nil
}

func scanAbsences(rows pgx.Rows) ([]leave.AbsenceRequest, error) {
	requests := make([]leave.AbsenceRequest, 0)
	for rows.Next() {
		var a leave.AbsenceRequest
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.LeaveType, &a.StartDate, &a.EndDate,
			&a.Reason, &a.Status, &a.ApprovedBy, &a.ApprovedAt, &a.RejectionReason,
			&a.CancelledBy, &a.CancelledAt, &a.CancellationReason,
			&a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, a)
	}
	return requests, rows.Err()
}
