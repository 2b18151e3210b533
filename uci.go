package kestrel

import "fmt"

// AlgebraicToIndex converts a two-character square name like "e4" into a
// Square index. It accepts either case for the file letter.
func AlgebraicToIndex(alg string) (Square, error) {
	if len(alg) != 2 {
		return 0, fmt.Errorf("kestrel: %q is not a valid square", alg)
	}
	file := alg[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("kestrel: %q has an invalid file", alg)
	}
	rank := alg[1]
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("kestrel: %q has an invalid rank", alg)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

// IndexToAlgebraic converts a Square back into its two-character name.
func IndexToAlgebraic(sq Square) string {
	file := byte('a' + sq.File())
	rank := byte('1' + sq.Rank())
	return string([]byte{file, rank})
}

// ParseMove parses UCI-style move text ("e2e4", "a7a8q", or the null
// move "0000") into a Move. The text alone never distinguishes a
// castle or an en-passant capture from an ordinary move, so the parsed
// from/to/promotion are round-tripped through pos's legal move
// generator to pick up the correct flags; ok is false if no legal move
// matches.
func ParseMove(text string, pos *Position) (m Move, ok bool) {
	if text == "0000" {
		return 0, true
	}
	if len(text) != 4 && len(text) != 5 {
		return 0, false
	}
	from, err := AlgebraicToIndex(text[0:2])
	if err != nil {
		return 0, false
	}
	to, err := AlgebraicToIndex(text[2:4])
	if err != nil {
		return 0, false
	}
	promo := Nothing
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return 0, false
		}
	}

	for _, lm := range pos.GenerateLegalMoves() {
		if lm.From() == from && lm.To() == to && lm.Promote() == promo {
			return lm, true
		}
	}
	return 0, false
}
