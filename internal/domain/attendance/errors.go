package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("Employee already has an open fichaje")
	ErrNotClockedIn     = errors.New("Employee has no open fichaje")
	ErrFichajeNotFound  = errors.New("Fichaje not found")
)
