package lifecycle

import (
	"context"

	"civicwatch-system/services/report-service/models"
)

// ApplyReInspection records the outcome of an AI before/after comparison.
// The follow-up image is always retained for audit. A resolved verdict sets
// RESOLVED directly, bypassing SetStatus: this path stamps and rewards on
// its own, and pays the acting user the re-inspection reward rather than
// the voting path's resolution reward.
func (e *Engine) ApplyReInspection(ctx context.Context, reportID, followUpImage string, resolved bool, actorID string) (*models.Report, error) {
	report, err := e.Store.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.ReInspectionImage = followUpImage

	if resolved {
		now := e.Now()
		report.Status = models.StatusResolved
		report.AiVerifiedResolution = true
		if report.ResolvedAt == nil {
			report.ResolvedAt = &now
		}
		report.UpdatedBy = models.ActorSystem
	}

	if err := e.Store.Update(ctx, report); err != nil {
		return nil, err
	}

	if resolved {
		e.applyDelta(ctx, actorID, DeltaVerifiedResolution)
	}

	return report, nil
}
