package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"civicwatch-system/services/report-service/models"
)

func TestSweepEscalatesStagnantReport(t *testing.T) {
	e, s, _ := newTestEngine(t)
	ctx := context.Background()

	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedReport(t, s, "r1", "user-1", created)

	now := created.Add(EscalationThreshold + time.Millisecond)
	e.Now = func() time.Time { return now }

	changed, err := e.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, changed)

	report, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, models.StatusEscalated, report.Status)
	require.True(t, report.IsOverdue)
	require.NotNil(t, report.EscalatedAt)
	require.Equal(t, EscalationContact, report.EscalatedTo)
	require.Equal(t, models.ActorSystem, report.UpdatedBy)
}

func TestSweepIsIdempotent(t *testing.T) {
	e, s, _ := newTestEngine(t)
	ctx := context.Background()

	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedReport(t, s, "r1", "user-1", created)
	e.Now = func() time.Time { return created.Add(EscalationThreshold + time.Hour) }

	_, err := e.Sweep(ctx)
	require.NoError(t, err)
	first, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		changed, err := e.Sweep(ctx)
		require.NoError(t, err)
		require.Zero(t, changed)
	}

	after, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, first.Status, after.Status)
	require.True(t, after.IsOverdue)
	require.Equal(t, *first.EscalatedAt, *after.EscalatedAt)
}

func TestSweepSkipsFreshAndTerminalReports(t *testing.T) {
	e, s, _ := newTestEngine(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e.Now = func() time.Time { return now }

	fresh := seedReport(t, s, "fresh", "user-1", now.Add(-time.Hour))
	_ = fresh

	resolved := seedReport(t, s, "resolved", "user-2", now.Add(-10*24*time.Hour))
	resolved.Status = models.StatusResolved
	require.NoError(t, s.Update(ctx, resolved))

	rejected := seedReport(t, s, "rejected", "user-3", now.Add(-10*24*time.Hour))
	rejected.Status = models.StatusRejected
	require.NoError(t, s.Update(ctx, rejected))

	changed, err := e.Sweep(ctx)
	require.NoError(t, err)
	require.Zero(t, changed)

	got, err := s.GetByID(ctx, "fresh")
	require.NoError(t, err)
	require.Equal(t, models.StatusReported, got.Status)
	require.False(t, got.IsOverdue)

	got, err = s.GetByID(ctx, "resolved")
	require.NoError(t, err)
	require.Equal(t, models.StatusResolved, got.Status)
	require.False(t, got.IsOverdue)
}

func TestSweepExactlyAtThresholdDoesNothing(t *testing.T) {
	e, s, _ := newTestEngine(t)
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedReport(t, s, "r1", "user-1", created)
	e.Now = func() time.Time { return created.Add(EscalationThreshold) }

	changed, err := e.Sweep(context.Background())
	require.NoError(t, err)
	require.Zero(t, changed, "age must exceed the threshold, not merely reach it")
}
