package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dtr-go/internal/handler/http/response"
)

// AdminOnly lets through callers whose token carries is_admin=true.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, err := auth.ViewerFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !viewer.IsAdmin {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
