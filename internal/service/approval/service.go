package approval

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
)

type ApprovalServiceImpl struct {
	repos map[approval.Kind]approval.StatusRepository
	now   func() time.Time
}

// NewApprovalService takes one status repository per reviewable request kind.
func NewApprovalService(repos map[approval.Kind]approval.StatusRepository) approval.Service {
	return &ApprovalServiceImpl{
		repos: repos,
		now:   time.Now,
	}
}

// Review implements approval.Service.
func (s *ApprovalServiceImpl) Review(ctx context.Context, req approval.ReviewRequest) (approval.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ReviewResponse{}, err
	}

	viewer, err := auth.ViewerFromContext(ctx)
	if err != nil {
		return approval.ReviewResponse{}, err
	}
	if !viewer.IsAdmin {
		return approval.ReviewResponse{}, auth.ErrAdminPrivilegeRequired
	}

	kind := approval.Kind(req.Kind)
	repo, ok := s.repos[kind]
	if !ok {
		return approval.ReviewResponse{}, approval.ErrUnknownKind
	}

	review, err := repo.Review(ctx, approval.Review{
		Kind:       kind,
		RequestID:  req.ID,
		Status:     approval.Status(req.Decision),
		ReviewerID: viewer.UserID,
		Note:       req.Note,
		ReviewedAt: s.now().UTC(),
	})
	if err != nil {
		return approval.ReviewResponse{}, err
	}

	slog.Info("Request reviewed",
		"kind", review.Kind,
		"request_id", review.RequestID,
		"status", review.Status,
		"reviewer_id", review.ReviewerID,
	)

	return approval.ReviewResponse{
		Kind:       string(review.Kind),
		ID:         review.RequestID,
		Status:     string(review.Status),
		ReviewedBy: review.ReviewerID,
		Note:       review.Note,
		ReviewedAt: review.ReviewedAt.Format(time.RFC3339),
	}, nil
}
