package dtr

import (
	"context"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
)

// Service defines DTR operations
type Service interface {
	// Compute builds the DTR of a user for a cutoff from live sources
	Compute(ctx context.Context, req ReportRequest) (Report, error)

	// Export computes the same report as Compute for a spreadsheet download
	Export(ctx context.Context, req ReportRequest) (Report, error)

	// Save computes a DTR and stores it as a snapshot (admin only)
	Save(ctx context.Context, req ReportRequest) (Report, error)

	// GetSaved reads a stored snapshot back as a report
	GetSaved(ctx context.Context, req ReportRequest) (Report, error)

	// Snapshot computes and stores a DTR without a caller; used by background jobs
	Snapshot(ctx context.Context, userID string, period cutoff.Period) (Report, error)

	// ListCutoffs lists cutoff periods, most recent start first
	ListCutoffs(ctx context.Context) ([]cutoff.PeriodResponse, error)
}
