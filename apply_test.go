package kestrel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := *pos
	beforeHash := pos.Hash()

	for _, m := range pos.GenerateLegalMoves() {
		u := pos.MakeMove(m)
		pos.UnmakeMove(u)
		assert.Equal(t, beforeHash, pos.Hash(), "hash not restored after %s", m)
		assert.Equal(t, before.White, pos.White, "white bitboards not restored after %s", m)
		assert.Equal(t, before.Black, pos.Black, "black bitboards not restored after %s", m)
		assert.Equal(t, before.castleRights, pos.castleRights, "castle rights not restored after %s", m)
		assert.Equal(t, before.EnPassant, pos.EnPassant, "en passant not restored after %s", m)
		assert.Equal(t, before.mailbox, pos.mailbox, "mailbox not restored after %s", m)
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	m, ok := ParseMove("e5d6", pos)
	require.True(t, ok)
	assert.True(t, m.IsEnPassant())

	pos.MakeMove(m)
	piece, _ := pos.PieceAt(35) // d5, the captured pawn's square, should now be empty
	assert.Equal(t, Nothing, piece)
}

func TestCastleStripsRights(t *testing.T) {
	pos, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	m, ok := ParseMove("e1g1", pos)
	require.True(t, ok)
	require.True(t, m.IsCastle())

	pos.MakeMove(m)
	assert.True(t, pos.castleRights&castleWhiteKingside == 0)
	assert.True(t, pos.castleRights&castleWhiteQueenside == 0)
	rookPiece, rookColor := pos.PieceAt(5) // f1
	assert.Equal(t, Rook, rookPiece)
	assert.Equal(t, White, rookColor)
}

func TestPromotion(t *testing.T) {
	pos, err := FromFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	m, ok := ParseMove("a7a8q", pos)
	require.True(t, ok)
	u := pos.MakeMove(m)
	piece, color := pos.PieceAt(56)
	assert.Equal(t, Queen, piece)
	assert.Equal(t, White, color)

	pos.UnmakeMove(u)
	piece, color = pos.PieceAt(48) // a7
	assert.Equal(t, Pawn, piece)
	assert.Equal(t, White, color)
}

func TestNullMoveRestoresHash(t *testing.T) {
	pos := NewPosition()
	before := pos.Hash()
	u := pos.MakeNullMove()
	assert.Equal(t, Black, pos.SideToMove)
	pos.UnmakeNullMove(u)
	assert.Equal(t, before, pos.Hash())
	assert.Equal(t, White, pos.SideToMove)
}
