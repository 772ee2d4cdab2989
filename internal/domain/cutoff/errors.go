package cutoff

import "errors"

var (
	ErrCutoffNotFound   = errors.New("cutoff period not found")
	ErrNoCutoffPeriods  = errors.New("no cutoff periods configured")
	ErrInvalidDateRange = errors.New("cutoff end date is before its start date")
)
