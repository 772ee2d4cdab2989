package schedule

import "errors"

var (
	ErrAssignmentNotFound         = errors.New("schedule assignment not found")
	ErrDuplicateEffectivityDate   = errors.New("an assignment with this effectivity date already exists")
	ErrScheduleAdjustmentNotFound = errors.New("schedule adjustment not found")
	ErrInvalidScheduleDefinition  = errors.New("invalid schedule definition")
)
