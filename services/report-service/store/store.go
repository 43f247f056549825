package store

import (
	"context"
	"errors"

	"civicwatch-system/services/report-service/models"
)

// ErrNotFound signals that the referenced report id is absent. Callers can
// distinguish "nothing happened because the id is invalid" from a successful
// no-op transition.
var ErrNotFound = errors.New("report not found")

// ReportStore is the authoritative collection of hazard reports.
//
// Insert assigns the authority token and empty vote sets when absent; the
// token is never regenerated for an existing report. GetAll always returns
// reports sorted by creation time descending, so callers must not assume
// insertion order. Update overwrites the whole record matching the id.
// Implementations must serialize concurrent mutations so writers never lose
// each other's updates.
type ReportStore interface {
	Insert(ctx context.Context, report *models.Report) error
	GetAll(ctx context.Context) ([]models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Update(ctx context.Context, report *models.Report) error
}
