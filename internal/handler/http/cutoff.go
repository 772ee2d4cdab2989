package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/handler/http/response"
)

type CutoffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type cutoffHandlerImpl struct {
	dtrService dtr.Service
}

func NewCutoffHandler(dtrService dtr.Service) CutoffHandler {
	return &cutoffHandlerImpl{
		dtrService: dtrService,
	}
}

// List handles GET /cutoffs
func (h *cutoffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.dtrService.ListCutoffs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}
