package dtr

import (
	"strings"

	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/validator"
)

// ReportRequest selects a user and a cutoff. An empty UserID means the caller; an
// empty CutoffID means the most-recently-starting cutoff.
type ReportRequest struct {
	UserID   string `json:"user_id"`
	CutoffID string `json:"cutoff_id"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	r.UserID = strings.TrimSpace(r.UserID)
	if r.UserID != "" && !validator.IsValidUUID(r.UserID) {
		errs.Add("user_id", "user_id must be a valid UUID")
	}
	r.CutoffID = strings.TrimSpace(r.CutoffID)
	if r.CutoffID != "" && !validator.IsValidUUID(r.CutoffID) {
		errs.Add("cutoff_id", "cutoff_id must be a valid UUID")
	}

	return errs.Err()
}
