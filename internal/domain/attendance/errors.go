package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrTimeAdjustmentNotFound = errors.New("time adjustment not found")
)
