package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("Employee not found")
	ErrEmployeeCodeExists = errors.New("Employee code already exists")
	ErrEmailExists        = errors.New("Email already registered")
	ErrAlreadyTerminated  = errors.New("Employee already terminated")
)
