package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Viewer is the authenticated caller. IsAdmin is trusted as issued by the token.
type Viewer struct {
	UserID  string
	IsAdmin bool
}

// ViewerFromContext extracts the caller from the verified JWT claims.
func ViewerFromContext(ctx context.Context) (Viewer, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Viewer{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Viewer{}, ErrInvalidToken
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return Viewer{UserID: userID, IsAdmin: isAdmin}, nil
}

// CanView reports whether the viewer may read records belonging to userID.
func (v Viewer) CanView(userID string) bool {
	return v.IsAdmin || v.UserID == userID
}
