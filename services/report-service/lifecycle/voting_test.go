package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"civicwatch-system/services/report-service/models"
)

func TestCastVoteRecordsVerdictAndRewardsVoter(t *testing.T) {
	e, s, l := newTestEngine(t)
	l.Seed("voter-1", 50)
	seedReport(t, s, "r1", "user-1", time.Now())
	ctx := context.Background()

	report, err := e.CastVote(ctx, "r1", "voter-1", false)
	require.NoError(t, err)
	require.Equal(t, []string{"voter-1"}, report.Votes.No)
	require.Empty(t, report.Votes.Yes)

	score, _ := l.Score("voter-1")
	require.Equal(t, 52, score)
}

func TestCastVoteFirstVoteIsFinal(t *testing.T) {
	e, s, l := newTestEngine(t)
	l.Seed("voter-1", 50)
	seedReport(t, s, "r1", "user-1", time.Now())
	ctx := context.Background()

	_, err := e.CastVote(ctx, "r1", "voter-1", true)
	require.NoError(t, err)

	// Change of mind and repeat votes are both silently ignored.
	report, err := e.CastVote(ctx, "r1", "voter-1", false)
	require.NoError(t, err)
	require.Equal(t, []string{"voter-1"}, report.Votes.Yes)
	require.Empty(t, report.Votes.No)

	report, err = e.CastVote(ctx, "r1", "voter-1", true)
	require.NoError(t, err)
	require.Equal(t, []string{"voter-1"}, report.Votes.Yes)

	score, _ := l.Score("voter-1")
	require.Equal(t, 52, score, "duplicate votes earn nothing")
}

func TestCastVoteQuorumResolves(t *testing.T) {
	e, s, l := newTestEngine(t)
	l.Seed("user-1", 50)
	l.Seed("voter-3", 50)
	seedReport(t, s, "r1", "user-1", time.Now())
	ctx := context.Background()

	_, err := e.CastVote(ctx, "r1", "voter-1", true)
	require.NoError(t, err)
	_, err = e.CastVote(ctx, "r1", "voter-2", true)
	require.NoError(t, err)

	mid, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, models.StatusReported, mid.Status, "two votes are below quorum")

	report, err := e.CastVote(ctx, "r1", "voter-3", true)
	require.NoError(t, err)
	require.Equal(t, models.StatusResolved, report.Status)
	require.Equal(t, models.ActorSystem, report.UpdatedBy)
	require.NotNil(t, report.ResolvedAt)

	reporterScore, _ := l.Score("user-1")
	require.Equal(t, 65, reporterScore, "quorum resolution pays the reporter the resolution reward")
	voterScore, _ := l.Score("voter-3")
	require.Equal(t, 52, voterScore)
}

func TestCastVoteNoQuorumFromNoVotes(t *testing.T) {
	e, s, _ := newTestEngine(t)
	seedReport(t, s, "r1", "user-1", time.Now())
	ctx := context.Background()

	for _, voter := range []string{"v1", "v2", "v3", "v4"} {
		_, err := e.CastVote(ctx, "r1", voter, false)
		require.NoError(t, err)
	}

	report, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, models.StatusReported, report.Status)
	require.Len(t, report.Votes.No, 4)
}

func TestCastVoteConcurrentVotersAllRecorded(t *testing.T) {
	e, s, _ := newTestEngine(t)
	seedReport(t, s, "r1", "user-1", time.Now())
	ctx := context.Background()

	const voters = 8
	errs := make(chan error, voters)
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := e.CastVote(ctx, "r1", fmt.Sprintf("voter-%d", n), false)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	report, err := s.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, report.Votes.No, voters, "no vote may be lost to a concurrent writer")
}

func TestCastVoteOnResolvedReportKeepsStatus(t *testing.T) {
	e, s, l := newTestEngine(t)
	l.Seed("user-1", 50)
	r := seedReport(t, s, "r1", "user-1", time.Now())
	r.Status = models.StatusResolved
	r.Votes.Yes = []string{"v1", "v2", "v3"}
	require.NoError(t, s.Update(context.Background(), r))

	_, err := e.CastVote(context.Background(), "r1", "v4", true)
	require.NoError(t, err)

	score, _ := l.Score("user-1")
	require.Equal(t, 50, score, "already-resolved report must not re-trigger the resolution reward")
}
