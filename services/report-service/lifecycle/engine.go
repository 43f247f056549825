package lifecycle

import (
	"context"
	"log"
	"sync"
	"time"

	"civicwatch-system/services/report-service/models"
	"civicwatch-system/services/report-service/store"
	"civicwatch-system/services/report-service/trust"
)

// Policy constants for the report lifecycle. Trust deltas are the contract
// the rest of the platform relies on; changing them changes the reward
// economy.
const (
	EscalationThreshold = 3 * 24 * time.Hour
	VoteThreshold       = 3
	EscalationContact   = "City Commissioner / Oversight Board"

	DeltaValidSubmission    = 5
	DeltaAcknowledged       = 10
	DeltaResolved           = 15
	DeltaRejected           = -25
	DeltaVoteCast           = 2
	DeltaVerifiedResolution = 20
)

// Engine owns every mutation of a report's lifecycle state. All report
// writes go through the store and all reputation changes through the
// ledger; nothing bypasses either.
type Engine struct {
	Store  store.ReportStore
	Ledger trust.Ledger
	Now    func() time.Time

	// votes serializes the read-modify-write of vote sets; without it two
	// simultaneous voters on one report could overwrite each other's append.
	votes sync.Mutex
}

func NewEngine(s store.ReportStore, l trust.Ledger) *Engine {
	return &Engine{Store: s, Ledger: l, Now: time.Now}
}

// SetStatus applies a lifecycle transition. Any status is reachable from any
// status; the sweeper and the authority token path depend on that. The
// status-specific timestamp is stamped only on the first entry into that
// status, and the trust delta is applied only when the status actually
// changed and the reporter is a named user.
func (e *Engine) SetStatus(ctx context.Context, id string, status models.IssueStatus, actor models.Actor) (*models.Report, error) {
	report, err := e.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := report.Status
	now := e.Now()

	report.Status = status
	report.UpdatedBy = actor

	switch status {
	case models.StatusAcknowledged:
		if report.AcknowledgedAt == nil {
			report.AcknowledgedAt = &now
		}
	case models.StatusInProgress:
		if report.StartedAt == nil {
			report.StartedAt = &now
		}
	case models.StatusResolved:
		if report.ResolvedAt == nil {
			report.ResolvedAt = &now
		}
	}

	if err := e.Store.Update(ctx, report); err != nil {
		return nil, err
	}

	if oldStatus != status && report.ReportedBy != models.AnonymousReporter {
		switch status {
		case models.StatusAcknowledged:
			e.applyDelta(ctx, report.ReportedBy, DeltaAcknowledged)
		case models.StatusResolved:
			e.applyDelta(ctx, report.ReportedBy, DeltaResolved)
		case models.StatusRejected:
			e.applyDelta(ctx, report.ReportedBy, DeltaRejected)
		}
	}

	return report, nil
}

// applyDelta forwards a reputation change to the ledger. Ledger trouble is
// logged rather than failing the already-persisted transition.
func (e *Engine) applyDelta(ctx context.Context, userID string, delta int) {
	if err := e.Ledger.ApplyDelta(ctx, userID, delta); err != nil {
		log.Printf("[WARN] Trust delta %+d for user %s not applied: %v", delta, userID, err)
	}
}
