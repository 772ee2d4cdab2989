package approval

import (
	"strings"

	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/validator"
)

type ReviewRequest struct {
	Kind     string  `json:"-"`
	ID       string  `json:"-"`
	Decision string  `json:"decision"`
	Note     *string `json:"note,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, KindValues) {
		errs.Add("kind", "kind must be one of: "+strings.Join(KindValues, ", "))
	}
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}

	r.Decision = strings.ToLower(strings.TrimSpace(r.Decision))
	if validator.IsEmpty(r.Decision) {
		errs.Add("decision", "decision is required")
	} else if !validator.IsInSlice(r.Decision, DecisionValues) {
		errs.Add("decision", "decision must be one of: "+strings.Join(DecisionValues, ", "))
	}

	if r.Note != nil && len(*r.Note) > 500 {
		errs.Add("note", "note must not exceed 500 characters")
	}

	return errs.Err()
}

type ReviewResponse struct {
	Kind       string  `json:"kind"`
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	ReviewedBy string  `json:"reviewed_by"`
	Note       *string `json:"note,omitempty"`
	ReviewedAt string  `json:"reviewed_at"`
}
