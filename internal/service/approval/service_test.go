package approval

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/validator"
)

// fakeStatusRepo keeps request statuses in memory and enforces the pending-only rule.
type fakeStatusRepo struct {
	statuses map[string]approval.Status
	last     approval.Review
}

func (f *fakeStatusRepo) Review(ctx context.Context, review approval.Review) (approval.Review, error) {
	status, ok := f.statuses[review.RequestID]
	if !ok {
		return approval.Review{}, approval.ErrRequestNotFound
	}
	if status != approval.StatusPending {
		return approval.Review{}, approval.ErrRequestAlreadyReviewed
	}
	f.statuses[review.RequestID] = review.Status
	f.last = review
	return review, nil
}

func ctxWithClaims(t *testing.T, userID string, isAdmin bool) context.Context {
	t.Helper()
	token, err := jwt.NewBuilder().Claim("user_id", userID).Claim("is_admin", isAdmin).Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newService() (approval.Service, *fakeStatusRepo) {
	leaves := &fakeStatusRepo{statuses: map[string]approval.Status{
		"leave-1": approval.StatusPending,
		"leave-2": approval.StatusApproved,
	}}
	return NewApprovalService(map[approval.Kind]approval.StatusRepository{
		approval.KindLeave: leaves,
	}), leaves
}

func TestApprovalService_Review(t *testing.T) {
	svc, repo := newService()
	note := "enjoy"

	resp, err := svc.Review(ctxWithClaims(t, "admin-1", true), approval.ReviewRequest{
		Kind:     "leave",
		ID:       "leave-1",
		Decision: " Approved ",
		Note:     &note,
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "admin-1", resp.ReviewedBy)
	assert.Equal(t, "leave-1", resp.ID)
	assert.NotEmpty(t, resp.ReviewedAt)
	assert.Equal(t, approval.StatusApproved, repo.statuses["leave-1"])
	assert.Equal(t, "admin-1", repo.last.ReviewerID)
}

func TestApprovalService_ReviewRequiresAdmin(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Review(ctxWithClaims(t, "user-1", false), approval.ReviewRequest{
		Kind: "leave", ID: "leave-1", Decision: "approved",
	})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)
	assert.Equal(t, approval.StatusPending, repo.statuses["leave-1"])
}

func TestApprovalService_ReviewErrors(t *testing.T) {
	svc, _ := newService()
	ctx := ctxWithClaims(t, "admin-1", true)

	_, err := svc.Review(ctx, approval.ReviewRequest{Kind: "leave", ID: "leave-2", Decision: "rejected"})
	assert.ErrorIs(t, err, approval.ErrRequestAlreadyReviewed)

	_, err = svc.Review(ctx, approval.ReviewRequest{Kind: "leave", ID: "nope", Decision: "rejected"})
	assert.ErrorIs(t, err, approval.ErrRequestNotFound)

	_, err = svc.Review(ctx, approval.ReviewRequest{Kind: "overtime", ID: "ot-1", Decision: "approved"})
	assert.ErrorIs(t, err, approval.ErrUnknownKind)
}

func TestApprovalService_ReviewValidation(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Review(ctxWithClaims(t, "admin-1", true), approval.ReviewRequest{Kind: "payroll", ID: "", Decision: "maybe"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "kind")
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "decision")
}
