package lifecycle

import (
	"context"
	"crypto/subtle"
	"errors"

	"civicwatch-system/services/report-service/models"
	"civicwatch-system/services/report-service/store"
)

// SetStatusByToken authorizes a status update from an emailed one-click
// link. The exact token match is the sole authorization check on this path;
// there is no session and no role. A missing report or a mismatched token
// yields ok=false with no mutation.
func (e *Engine) SetStatusByToken(ctx context.Context, reportID, token string, status models.IssueStatus) (bool, error) {
	if token == "" || !status.Valid() {
		return false, nil
	}

	report, err := e.Store.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(report.AuthorityToken), []byte(token)) != 1 {
		return false, nil
	}

	if _, err := e.SetStatus(ctx, reportID, status, models.ActorAuthority); err != nil {
		return false, err
	}
	return true, nil
}
