package kestrel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminations(t *testing.T) {
	fens := []string{
		"8/8/8/8/8/4k3/8/r3K3 w - - 6 4",
		"4k3/4P3/4K3/8/8/8/8/8 b - - 0 1",
		"7k/ppp5/8/8/8/8/7K/8 w - - 100 1",

		"4k3/8/8/5KB1/8/8/8/8 w - - 0 1",
		"4k3/8/8/5K2/8/8/8/8 w - - 0 1",
		"4k3/8/8/5KN1/8/8/8/8 w - - 0 1",
		"4kn2/8/8/5K2/8/8/8/8 w - - 0 1",
		"4kb2/8/8/5KB1/8/8/8/8 w - - 0 1",
	}

	want := []Termination{
		TerminationCheckmate,
		TerminationStalemate,
		TerminationFiftyMoveRule,

		TerminationInsufficientMaterial,
		TerminationInsufficientMaterial,
		TerminationInsufficientMaterial,
		TerminationInsufficientMaterial,
		TerminationInsufficientMaterial,
	}

	for i := range fens {
		pos, err := FromFEN(fens[i])
		require.NoError(t, err, "fen %d", i)

		moves := pos.GenerateLegalMoves()
		ok := pos.IsTerminated(len(moves))
		require.True(t, ok, "fen %q should be terminated", fens[i])
		require.Equalf(t, want[i], pos.Termination(), "fen %q", fens[i])
	}
}

func TestRepetitions(t *testing.T) {
	fens := []string{
		"8/8/8/r7/8/7K/2k5/8 w - - 0 1",
		"8/8/8/r7/8/7K/2k5/8 b - - 0 1",
		"8/5pk1/6p1/8/4Q3/8/5K2/8 w - - 0 1",
		"8/6k1/8/8/4QR2/8/5K2/8 w - - 0 1",
		"8/6k1/5qr1/8/8/8/6K1/8 w - - 0 1",
	}

	movesText := [][]string{
		{"h3g3", "a5a4", "g3h3", "a4a5", "h3g3", "a5a4", "g3h3", "a4a5"},
		{"a5a4", "h3g3", "a4a5", "g3h3", "a5a4", "h3g3", "a4a5", "g3h3"},
		{"e4e5", "g7g8", "e5e8", "g8g7", "e8e5", "g7g8", "e5e8", "g8g7", "e8e5"},
		{"f4h4", "g7g8", "h4f4", "g8g7", "f4h4", "g7g8", "h4f4", "g8g7"},
		{"g2h3", "g6h6", "h3g2", "h6g6", "g2h3", "g6h6", "h3g2", "h6g6"},
	}

	for i := range fens {
		pos, err := FromFEN(fens[i])
		require.NoError(t, err, "fen %d", i)

		for _, text := range movesText[i] {
			m, ok := ParseMove(text, pos)
			require.Truef(t, ok, "move %q illegal in %q", text, fens[i])
			pos.MakeMove(m)
		}

		require.Truef(t, pos.IsRepetition(3), "%s is not a repetition", fens[i])
	}
}

func TestInsufficientMaterialDoesNotFlagTwoKnights(t *testing.T) {
	// K+2N vs K is deliberately NOT treated as a forced draw here.
	pos, err := FromFEN("4k3/8/8/5KNN/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	require.False(t, pos.IsInsufficientMaterial())
}
