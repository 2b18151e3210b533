package kestrel

import "math/rand/v2"

// Zobrist key tables: one key per (color, piece kind, square), one key
// for side-to-move, one per castling right bit, and one per en-passant
// file. The halfmove clock and fullmove number never participate in the
// hash, since they don't affect legal continuations the way the other
// state does.
var (
	pieceKeys   [2][7][64]uint64 // [color][Piece][Square], Nothing row unused
	sideToMoveKey uint64
	castleKeys  [4]uint64 // indexed by the castleWhiteQueenside.. bit position
	epFileKeys  [8]uint64
)

// zobristSeed is fixed so hashes (and therefore perft/search traces) are
// reproducible across runs.
const zobristSeed uint64 = 0x123456789ABCDEF0

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed^0x9E3779B97F4A7C15))
	for c := 0; c < 2; c++ {
		for pc := Pawn; pc <= King; pc++ {
			for sq := 0; sq < 64; sq++ {
				pieceKeys[c][pc][sq] = rng.Uint64()
			}
		}
	}
	sideToMoveKey = rng.Uint64()
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

func castleKeyForBit(bit uint8) uint64 {
	switch bit {
	case castleWhiteQueenside:
		return castleKeys[0]
	case castleWhiteKingside:
		return castleKeys[1]
	case castleBlackQueenside:
		return castleKeys[2]
	case castleBlackKingside:
		return castleKeys[3]
	default:
		return 0
	}
}

// epHashKey returns the hash contribution of the current en-passant
// square, keyed by file only (the rank is implied by side to move).
func epHashKey(ep Square) uint64 {
	if ep == noEnPassant {
		return 0
	}
	return epFileKeys[ep.File()]
}

// recomputeHash derives the Zobrist hash from scratch by scanning every
// square. Apply/Unmake maintain the hash incrementally instead (cheaper
// per spec's design notes); this is used when loading a position from
// FEN and is kept available as the non-incremental fallback.
func (p *Position) recomputeHash() {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		piece, c := p.PieceAt(sq)
		if piece == Nothing {
			continue
		}
		h ^= pieceKeys[c][piece][sq]
	}
	if p.SideToMove == Black {
		h ^= sideToMoveKey
	}
	for _, bit := range []uint8{castleWhiteQueenside, castleWhiteKingside, castleBlackQueenside, castleBlackKingside} {
		if p.castleRights&bit != 0 {
			h ^= castleKeyForBit(bit)
		}
	}
	h ^= epHashKey(p.EnPassant)
	p.hash = h
}
