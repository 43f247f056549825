package lifecycle

import (
	"context"
	"fmt"

	"civicwatch-system/services/report-service/models"
)

// Sweep walks every non-terminal report and escalates the stagnant ones.
// The pass is idempotent and monotonic: IsOverdue never flips back to false
// and an ESCALATED report stays escalated. RESOLVED and REJECTED reports are
// skipped entirely. Returns the number of reports it changed.
func (e *Engine) Sweep(ctx context.Context) (int, error) {
	reports, err := e.Store.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep failed to read reports: %w", err)
	}

	now := e.Now()
	changed := 0

	for i := range reports {
		report := &reports[i]
		if report.Status.Terminal() {
			continue
		}

		age := now.Sub(report.CreatedAt)
		if age <= EscalationThreshold {
			continue
		}

		dirty := false
		if !report.IsOverdue {
			report.IsOverdue = true
			dirty = true
		}
		if report.Status != models.StatusEscalated {
			report.Status = models.StatusEscalated
			report.EscalatedAt = &now
			report.EscalatedTo = EscalationContact
			report.UpdatedBy = models.ActorSystem
			dirty = true
		}

		if dirty {
			if err := e.Store.Update(ctx, report); err != nil {
				return changed, fmt.Errorf("sweep failed to update report %s: %w", report.ID, err)
			}
			changed++
		}
	}

	return changed, nil
}
