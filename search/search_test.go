package search

import (
	"testing"
	"time"

	"github.com/kestrelchess/kestrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindsMateInOne(t *testing.T) {
	// White to move, the queen on h5 takes on f7 for Scholar's mate
	// (the bishop on c4 guards f7).
	pos, err := kestrel.FromFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)

	outcome := PickBestMove(pos, DepthLimits(1), Material)
	require.False(t, outcome.Stopped)
	assert.GreaterOrEqual(t, outcome.Score, Mate-10)
}

func TestStalemateIsScoredAsDraw(t *testing.T) {
	pos, err := kestrel.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Empty(t, pos.GenerateLegalMoves())

	outcome := PickBestMove(pos, DepthLimits(3), Material)
	assert.Equal(t, int32(0), outcome.Score)
}

func TestFiftyMoveRuleForcesDraw(t *testing.T) {
	pos, err := kestrel.FromFEN("7k/8/8/8/8/8/6RK/8 w - - 99 50")
	require.NoError(t, err)

	outcome := PickBestMove(pos, DepthLimits(2), Material)
	// Any move at all pushes the halfmove clock to 100, which the
	// searcher must recognize as an immediate draw rather than scoring
	// the resulting material advantage.
	assert.Equal(t, int32(0), outcome.Score)
}

func TestTimeControlStopsSearch(t *testing.T) {
	pos := kestrel.NewPosition()
	tc := NewTimeControlWithDeadline(0)
	tc.Stop() // force-stop immediately regardless of timing
	outcome := PickBestMove(pos, Limits{DepthCap: 20, TimeControl: tc}, Material)
	assert.True(t, outcome.Stopped)
}

func TestShouldCheckTimeInterval(t *testing.T) {
	assert.True(t, ShouldCheckTime(0))
	assert.True(t, ShouldCheckTime(1024))
	assert.False(t, ShouldCheckTime(1023))
}

func TestDepthAndTimeLimitsSetsBothBounds(t *testing.T) {
	limits := DepthAndTimeLimits(4, 50*time.Millisecond)
	assert.Equal(t, 4, limits.DepthCap)
	assert.NotNil(t, limits.TimeControl)
}
