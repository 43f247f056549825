package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"civicwatch-system/services/report-service/models"
)

func TestInsertAssignsTokenAndVoteSets(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	r := &models.Report{ID: "r1", Status: models.StatusReported, CreatedAt: time.Now()}
	require.NoError(t, s.Insert(ctx, r))

	require.NotEmpty(t, r.AuthorityToken)
	require.NotNil(t, r.Votes.Yes)
	require.NotNil(t, r.Votes.No)
}

func TestInsertNeverRegeneratesToken(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	r := &models.Report{ID: "r1", Status: models.StatusReported, CreatedAt: time.Now()}
	require.NoError(t, s.Insert(ctx, r))
	first := r.AuthorityToken

	again := &models.Report{ID: "r1", Status: models.StatusEmailed, CreatedAt: r.CreatedAt}
	require.NoError(t, s.Insert(ctx, again))
	require.Equal(t, first, again.AuthorityToken)

	stored, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, first, stored.AuthorityToken)
	require.Equal(t, models.StatusEmailed, stored.Status)
}

func TestTokensUniqueAcrossStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		r := &models.Report{ID: id, Status: models.StatusReported, CreatedAt: time.Now()}
		require.NoError(t, s.Insert(ctx, r))
		require.False(t, seen[r.AuthorityToken])
		seen[r.AuthorityToken] = true
	}
}

func TestGetAllSortedByCreatedAtDesc(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		r := &models.Report{ID: id, Status: models.StatusReported, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, s.Insert(ctx, r))
	}

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "new", all[0].ID)
	require.Equal(t, "mid", all[1].ID)
	require.Equal(t, "old", all[2].ID)
}

func TestInsertRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	r := &models.Report{
		ID:        "r1",
		CreatedAt: created,
		City:      "Bhilai",
		Location:  models.Location{Lat: 21.2, Lng: 81.4},
		Status:    models.StatusReported,
		Analysis: &models.AIAnalysis{
			Category:        models.CategoryPothole,
			Severity:        "HIGH",
			ConfidenceScore: 91,
			IsValidIssue:    true,
		},
		ReportedBy: "user-7",
	}
	require.NoError(t, s.Insert(ctx, r))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	require.Equal(t, r.ID, got.ID)
	require.Equal(t, r.City, got.City)
	require.Equal(t, r.Location, got.Location)
	require.Equal(t, *r.Analysis, *got.Analysis)
	require.Equal(t, r.ReportedBy, got.ReportedBy)
	require.Equal(t, r.AuthorityToken, got.AuthorityToken)
	require.Empty(t, got.Votes.Yes)
	require.Empty(t, got.Votes.No)
}

func TestUpdateMissingReport(t *testing.T) {
	s := NewMemoryStore()
	err := s.Update(context.Background(), &models.Report{ID: "ghost"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
