package kestrel

import "math/bits"

// noEnPassant marks the absence of an en-passant target square. 0 cannot
// be used as that sentinel (a1 is never a legal e.p. target, but callers
// should not have to know that), so an out-of-range value is used instead.
const noEnPassant Square = 64

// Position is the dual bitboard/mailbox representation this package
// generates moves and searches over. The two representations are kept
// bit-for-bit consistent by every mutating method: the mailbox is never
// updated independently of the bitboards, and vice versa.
type Position struct {
	SideToMove Color
	White      Bitboards
	Black      Bitboards

	mailbox      [64]Piece
	mailboxColor [64]Color

	castleRights   uint8
	EnPassant      Square
	HalfmoveClock  uint8
	FullmoveNumber uint16

	hash uint64

	// History records the Zobrist hash after every move actually played
	// on this Position, oldest first, used by IsRepetition. The search
	// package keeps its own separate stack seeded from this one, since
	// it must also account for hypothetical positions explored deep in
	// a search tree that are never played here.
	History []uint64

	termination Termination
}

func (p *Position) bitboardsFor(c Color) *Bitboards {
	if c == White {
		return &p.White
	}
	return &p.Black
}

// PieceAt returns the piece occupying sq and its color, or (Nothing,
// White) if the square is empty.
func (p *Position) PieceAt(sq Square) (Piece, Color) {
	return p.mailbox[sq], p.mailboxColor[sq]
}

// setSquare places piece/c on sq, keeping bitboards, mailbox and the
// incremental Zobrist hash consistent. sq must currently be empty.
func (p *Position) setSquare(sq Square, piece Piece, c Color) {
	p.mailbox[sq] = piece
	p.mailboxColor[sq] = c
	mask := sq.bit()
	bb := p.bitboardsFor(c)
	if ptr := bb.pieceBitboard(piece); ptr != nil {
		*ptr |= mask
	}
	bb.All |= mask
	p.hash ^= pieceKeys[c][piece][sq]
}

// clearSquare empties sq, keeping bitboards, mailbox and the incremental
// Zobrist hash consistent. A no-op if sq is already empty.
func (p *Position) clearSquare(sq Square) {
	piece, c := p.mailbox[sq], p.mailboxColor[sq]
	if piece == Nothing {
		return
	}
	mask := sq.bit()
	bb := p.bitboardsFor(c)
	if ptr := bb.pieceBitboard(piece); ptr != nil {
		*ptr &^= mask
	}
	bb.All &^= mask
	p.mailbox[sq] = Nothing
	p.mailboxColor[sq] = White
	p.hash ^= pieceKeys[c][piece][sq]
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("kestrel: start position FEN failed to parse: " + err.Error())
	}
	return p
}

// kingSquare returns the location of c's king. Undefined (panics) if c
// has no king, which never happens for a position built by this package.
func (p *Position) kingSquare(c Color) Square {
	kings := p.bitboardsFor(c).Kings
	if kings == 0 {
		panic("kestrel: position has no king for side to move")
	}
	return Square(bits.TrailingZeros64(kings))
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsSquareAttacked(p.kingSquare(c), c.Other())
}

// Hash returns the Zobrist hash of the position. It does not depend on
// the halfmove clock or fullmove number, only on piece placement, side
// to move, castling rights, and the en-passant file. It is cheap to call
// since apply/unmake maintain it incrementally rather than recomputing
// it from scratch.
func (p *Position) Hash() uint64 { return p.hash }

// Termination returns the most recently computed termination reason.
// Call IsTerminated to (re)compute it for the current state.
func (p *Position) Termination() Termination { return p.termination }

// IsTerminated applies, in order, the five draw/terminal checks: the
// fifty-move rule, threefold repetition, insufficient material, and (via
// legalMoveCount, normally len(GenerateLegalMoves())) checkmate or
// stalemate. It records which reason(s) applied, retrievable via
// Termination, and returns whether any did.
func (p *Position) IsTerminated(legalMoveCount int) bool {
	p.termination = TerminationNone
	if p.HalfmoveClock >= 100 {
		p.termination |= TerminationFiftyMoveRule
	}
	if p.IsRepetition(3) {
		p.termination |= TerminationRepetition
	}
	if p.IsInsufficientMaterial() {
		p.termination |= TerminationInsufficientMaterial
	}
	if legalMoveCount == 0 {
		if p.InCheck(p.SideToMove) {
			p.termination |= TerminationCheckmate
		} else {
			p.termination |= TerminationStalemate
		}
	}
	return p.termination != TerminationNone
}

// IsRepetition reports whether the current hash has occurred at least
// nTimes total (including the current occurrence) among plies with the
// same side to move, walking History backwards two plies at a time.
func (p *Position) IsRepetition(nTimes int) bool {
	count := 1 // the current position itself counts as one occurrence
	h := p.Hash()
	for i := len(p.History) - 3; i >= 0; i -= 2 {
		if p.History[i] == h {
			count++
			if count >= nTimes {
				return true
			}
		}
	}
	return count >= nTimes
}

// IsInsufficientMaterial reports the drawn-by-material cases: bare
// kings, king+minor vs king, or king+bishop vs king+bishop with
// same-colored bishops. Two knights against a bare king is deliberately
// NOT treated as a forced draw here (matching common engine behavior,
// since KNN vs K retains a theoretical if impractical mating chance).
func (p *Position) IsInsufficientMaterial() bool {
	if (p.White.Queens|p.White.Rooks|p.White.Pawns) != 0 ||
		(p.Black.Queens|p.Black.Rooks|p.Black.Pawns) != 0 {
		return false
	}
	wMinors := p.White.All &^ p.White.Kings
	bMinors := p.Black.All &^ p.Black.Kings

	if wMinors == 0 && bMinors == 0 {
		return true
	}
	// exactly one minor piece total anywhere on the board
	if bits.OnesCount64(wMinors)+bits.OnesCount64(bMinors) == 1 {
		return true
	}
	// one bishop each, same color complex
	if p.White.Bishops != 0 && p.Black.Bishops != 0 &&
		wMinors == p.White.Bishops && bMinors == p.Black.Bishops &&
		bits.OnesCount64(p.White.Bishops) == 1 && bits.OnesCount64(p.Black.Bishops) == 1 {
		wSq := Square(bits.TrailingZeros64(p.White.Bishops))
		bSq := Square(bits.TrailingZeros64(p.Black.Bishops))
		if (wSq.Rank()+wSq.File())%2 == (bSq.Rank()+bSq.File())%2 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the position, including its move history.
func (p *Position) Clone() *Position {
	cp := *p
	cp.History = make([]uint64, len(p.History))
	copy(cp.History, p.History)
	return &cp
}
