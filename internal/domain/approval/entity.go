package approval

import (
	"strings"
	"time"
)

// Kind identifies which request table a review targets.
type Kind string

const (
	KindLeave              Kind = "leave"
	KindOvertime           Kind = "overtime"
	KindTimeAdjustment     Kind = "time_adjustment"
	KindScheduleAdjustment Kind = "schedule_adjustment"
)

var KindValues = []string{
	string(KindLeave),
	string(KindOvertime),
	string(KindTimeAdjustment),
	string(KindScheduleAdjustment),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// DecisionValues are the statuses a reviewer may set.
var DecisionValues = []string{
	string(StatusApproved),
	string(StatusRejected),
}

// IsApproved reports whether a stored status means approved. Stored values are
// compared case-insensitively ("Approved" and "approved" both count).
func IsApproved(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), string(StatusApproved))
}

// Review is the outcome recorded on a request.
type Review struct {
	Kind       Kind
	RequestID  string
	Status     Status
	ReviewerID string
	Note       *string
	ReviewedAt time.Time
}
