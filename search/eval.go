// Package search implements a negamax alpha-beta searcher over the
// kestrel position core, plus the time-control and evaluator boundaries
// it depends on.
package search

import "github.com/kestrelchess/kestrel"

// Evaluator scores a position from the side-to-move's perspective, in
// centipawns. A higher score always favors whoever is to move.
type Evaluator func(pos *kestrel.Position) int32

// pieceValue gives the classic material weights; King is priced at 0
// since it is never captured in a legal position.
func pieceValue(p kestrel.Piece) int32 {
	switch p {
	case kestrel.Pawn:
		return 100
	case kestrel.Knight:
		return 320
	case kestrel.Bishop:
		return 330
	case kestrel.Rook:
		return 500
	case kestrel.Queen:
		return 900
	default:
		return 0
	}
}

// Material is the default evaluator: sum of piece values, white minus
// black, flipped to the side to move's perspective.
func Material(pos *kestrel.Position) int32 {
	var score int32
	for sq := kestrel.Square(0); sq < 64; sq++ {
		piece, color := pos.PieceAt(sq)
		if piece == kestrel.Nothing {
			continue
		}
		v := pieceValue(piece)
		if color == kestrel.Black {
			v = -v
		}
		score += v
	}
	if pos.SideToMove == kestrel.Black {
		score = -score
	}
	return score
}
