package lifecycle

import (
	"context"

	"civicwatch-system/services/report-service/models"
)

// ApplyDispatchResult records the outcome of an email dispatch attempt.
// Success marks the report EMAILED with the audit fields; failure marks it
// REJECTED with a FAILED email status. Both bypass SetStatus: a dispatch
// outcome is an infrastructure event, not an authority judgment, so the
// reporter's trust score is untouched either way.
func (e *Engine) ApplyDispatchResult(ctx context.Context, reportID string, sent bool, emailedTo string) (*models.Report, error) {
	report, err := e.Store.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.UpdatedBy = models.ActorSystem
	report.EmailSent = sent
	report.EmailedTo = emailedTo

	if sent {
		report.Status = models.StatusEmailed
		report.EmailStatus = "SENT"
		if report.EmailedAt == nil {
			now := e.Now()
			report.EmailedAt = &now
		}
	} else {
		report.Status = models.StatusRejected
		report.EmailStatus = "FAILED"
	}

	if err := e.Store.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
