package kestrel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLegalMovesStartingPosition(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()
	assert.Len(t, moves, 20)
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// White rook on e2 is pinned to the king on e1 by the black rook on e8;
	// it may only move along the e-file.
	pos, err := FromFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	for _, m := range pos.GenerateLegalMoves() {
		if m.From() == 12 { // e2
			assert.Equal(t, uint8(4), m.To().File(), "pinned rook left the e-file: %s", m)
		}
	}
}

func TestKingCannotMoveIntoCheck(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	for _, m := range pos.GenerateLegalMoves() {
		assert.NotEqual(t, Square(13), m.To(), "king should not be able to step onto f2, which the rook on rank 2 also attacks")
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate final position, white to move, white is mated.
	pos, err := FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	moves := pos.GenerateLegalMoves()
	assert.Empty(t, moves)
	assert.True(t, pos.InCheck(White))
}

func TestEnPassantGeneratedWhenTargetSet(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	var found bool
	for _, m := range pos.GenerateLegalMoves() {
		if m.IsEnPassant() {
			found = true
		}
	}
	assert.True(t, found, "expected an en-passant capture to be available")
}
