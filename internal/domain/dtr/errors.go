package dtr

import "errors"

var (
	ErrSupersededRun    = errors.New("DTR run was superseded by a newer selection")
	ErrSavedDTRNotFound = errors.New("no saved DTR for this user and cutoff")
	ErrUserIDRequired   = errors.New("user ID is required")
	ErrInvalidClock     = errors.New("time of day is not a valid clock time")
)
