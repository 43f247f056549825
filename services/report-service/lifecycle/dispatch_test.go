package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"civicwatch-system/services/report-service/models"
	"civicwatch-system/services/report-service/store"
)

func TestDispatchFailureDoesNotPenalizeReporter(t *testing.T) {
	e, s, l := newTestEngine(t)
	l.Seed("user-1", 55)
	seedReport(t, s, "r1", "user-1", time.Now())

	report, err := e.ApplyDispatchResult(context.Background(), "r1", false, "Springfield Road Works (r***s@springfield.example)")
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, report.Status)
	require.Equal(t, "FAILED", report.EmailStatus)
	require.False(t, report.EmailSent)
	require.Equal(t, models.ActorSystem, report.UpdatedBy)

	score, _ := l.Score("user-1")
	require.Equal(t, 55, score, "a failed send is an infrastructure event, not an authority judgment")
}

func TestDispatchSuccessMarksEmailed(t *testing.T) {
	e, s, l := newTestEngine(t)
	l.Seed("user-1", 55)
	seedReport(t, s, "r1", "user-1", time.Now())

	report, err := e.ApplyDispatchResult(context.Background(), "r1", true, "Springfield Road Works (r***s@springfield.example)")
	require.NoError(t, err)
	require.Equal(t, models.StatusEmailed, report.Status)
	require.Equal(t, "SENT", report.EmailStatus)
	require.True(t, report.EmailSent)
	require.NotNil(t, report.EmailedAt)
	require.Equal(t, "Springfield Road Works (r***s@springfield.example)", report.EmailedTo)

	score, _ := l.Score("user-1")
	require.Equal(t, 55, score)
}

func TestDispatchStampsEmailedAtOnce(t *testing.T) {
	e, s, _ := newTestEngine(t)
	seedReport(t, s, "r1", "user-1", time.Now())
	ctx := context.Background()

	first, err := e.ApplyDispatchResult(ctx, "r1", true, "Springfield Road Works")
	require.NoError(t, err)
	firstStamp := *first.EmailedAt

	e.Now = func() time.Time { return firstStamp.Add(time.Hour) }
	second, err := e.ApplyDispatchResult(ctx, "r1", true, "Springfield Road Works")
	require.NoError(t, err)
	require.Equal(t, firstStamp, *second.EmailedAt)
}

func TestDispatchUnknownReport(t *testing.T) {
	e, _, _ := newTestEngine(t)
	_, err := e.ApplyDispatchResult(context.Background(), "ghost", true, "anyone")
	require.ErrorIs(t, err, store.ErrNotFound)
}
