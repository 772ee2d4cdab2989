package leave

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Request is a leave request covering the closed date range [StartDate, EndDate].
// Type is the leave kind as filed, e.g. "sick" or "vacation".
type Request struct {
	ID        string
	UserID    string
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    string

	ReviewedBy *string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
