package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/cmlabs-hris/hris-dtr-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/jwt"
)

type SessionHandler interface {
	// Logout revokes the bearer token of the request
	Logout(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	jwtService jwt.Service
}

func NewSessionHandler(jwtService jwt.Service) SessionHandler {
	return &sessionHandlerImpl{
		jwtService: jwtService,
	}
}

// Logout handles POST /auth/logout
func (h *sessionHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	h.jwtService.RevokeToken(jwtauth.TokenFromHeader(r))
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
