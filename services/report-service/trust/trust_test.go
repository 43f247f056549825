package trust

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerClampsToRange(t *testing.T) {
	l := NewMemoryLedger()
	l.Seed("u1", 95)
	ctx := context.Background()

	require.NoError(t, l.ApplyDelta(ctx, "u1", 20))
	score, _ := l.Score("u1")
	require.Equal(t, 100, score)

	require.NoError(t, l.ApplyDelta(ctx, "u1", -25))
	require.NoError(t, l.ApplyDelta(ctx, "u1", -25))
	require.NoError(t, l.ApplyDelta(ctx, "u1", -25))
	require.NoError(t, l.ApplyDelta(ctx, "u1", -25))
	require.NoError(t, l.ApplyDelta(ctx, "u1", -25))
	score, _ = l.Score("u1")
	require.Equal(t, 0, score)
}

func TestMemoryLedgerUnknownUserIsNoop(t *testing.T) {
	l := NewMemoryLedger()
	require.NoError(t, l.ApplyDelta(context.Background(), "ghost", 10))
	_, known := l.Score("ghost")
	require.False(t, known)
}
