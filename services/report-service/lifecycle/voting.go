package lifecycle

import (
	"context"

	"civicwatch-system/services/report-service/models"
)

// CastVote records a community verdict on whether the hazard is fixed.
// The first vote is final: a voter already present in either set is silently
// ignored. Every recorded vote earns the voter a small trust reward, and the
// quorum of "yes" votes routes through SetStatus so the reporter collects
// the resolution reward on top. The vote append is serialized so concurrent
// voters each land in the stored sets.
func (e *Engine) CastVote(ctx context.Context, reportID, voterID string, resolved bool) (*models.Report, error) {
	e.votes.Lock()
	report, err := e.Store.GetByID(ctx, reportID)
	if err != nil {
		e.votes.Unlock()
		return nil, err
	}

	if report.Votes.HasVoted(voterID) {
		e.votes.Unlock()
		return report, nil
	}

	if resolved {
		report.Votes.Yes = append(report.Votes.Yes, voterID)
	} else {
		report.Votes.No = append(report.Votes.No, voterID)
	}

	err = e.Store.Update(ctx, report)
	e.votes.Unlock()
	if err != nil {
		return nil, err
	}

	e.applyDelta(ctx, voterID, DeltaVoteCast)

	if len(report.Votes.Yes) >= VoteThreshold && report.Status != models.StatusResolved {
		return e.SetStatus(ctx, reportID, models.StatusResolved, models.ActorSystem)
	}

	return report, nil
}
