package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/export"
)

type DTRHandler interface {
	// Get computes the DTR from live sources
	Get(w http.ResponseWriter, r *http.Request)

	// Export downloads the computed DTR as a spreadsheet
	Export(w http.ResponseWriter, r *http.Request)

	// Save stores a computed DTR as a snapshot
	Save(w http.ResponseWriter, r *http.Request)

	// GetSaved reads a stored snapshot
	GetSaved(w http.ResponseWriter, r *http.Request)
}

type dtrHandlerImpl struct {
	dtrService dtr.Service
}

func NewDTRHandler(dtrService dtr.Service) DTRHandler {
	return &dtrHandlerImpl{
		dtrService: dtrService,
	}
}

func reportRequestFromQuery(r *http.Request) dtr.ReportRequest {
	q := r.URL.Query()
	return dtr.ReportRequest{
		UserID:   q.Get("user_id"),
		CutoffID: q.Get("cutoff_id"),
	}
}

// Get handles GET /dtr
func (h *dtrHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.dtrService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Export handles GET /dtr/export
func (h *dtrHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.dtrService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Render fully before writing headers so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := export.WriteDTR(&buf, report); err != nil {
		slog.Error("Failed to render DTR spreadsheet", "user_id", report.UserID, "error", err)
		response.InternalServerError(w, "Failed to generate spreadsheet")
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(report)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("Failed to write DTR spreadsheet", "error", err)
	}
}

// Save handles POST /dtr/saved
func (h *dtrHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req dtr.ReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveDTR decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.dtrService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "DTR saved successfully", report)
}

// GetSaved handles GET /dtr/saved
func (h *dtrHandlerImpl) GetSaved(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.dtrService.GetSaved(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
