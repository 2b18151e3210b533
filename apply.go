package kestrel

// Undo captures everything MakeMove mutated, so UnmakeMove can restore
// the position exactly rather than recomputing it.
type Undo struct {
	Move Move

	CapturedPiece Piece
	CapturedColor Color

	PriorCastleRights   uint8
	PriorEnPassant      Square
	PriorHalfmoveClock  uint8
	PriorFullmoveNumber uint16
	PriorHash           uint64

	// MovedPieceKind is the piece's kind before any promotion, so undo
	// can put a Pawn back rather than leaving the promoted piece.
	MovedPieceKind Piece

	// RookFrom/RookTo are set only when the move was a castle.
	RookFrom, RookTo Square
	IsCastle         bool

	// EpCaptureSquare is set only when the move was an en-passant
	// capture: the square (not equal to Move.To()) the captured pawn
	// actually sat on.
	EpCaptureSquare Square
	IsEnPassant     bool
}

func (p *Position) stripCastleRight(bit uint8) {
	if p.castleRights&bit != 0 {
		p.castleRights &^= bit
		p.hash ^= castleKeyForBit(bit)
	}
}

// MakeMove mutates the position to reflect m and returns an Undo record
// to reverse it. m is assumed to be a legal move for the side to move;
// behavior is undefined otherwise, except that an empty from-square
// panics.
func (p *Position) MakeMove(m Move) Undo {
	us, them := p.SideToMove, p.SideToMove.Other()
	from, to := m.From(), m.To()
	movedKind, _ := p.PieceAt(from)
	if movedKind == Nothing {
		panic("kestrel: MakeMove from empty square " + IndexToAlgebraic(from))
	}

	u := Undo{
		Move:                m,
		PriorCastleRights:   p.castleRights,
		PriorEnPassant:      p.EnPassant,
		PriorHalfmoveClock:  p.HalfmoveClock,
		PriorFullmoveNumber: p.FullmoveNumber,
		PriorHash:           p.hash,
		MovedPieceKind:      movedKind,
		EpCaptureSquare:     noEnPassant,
	}

	isCaptureOrPawnMove := movedKind == Pawn
	if m.IsEnPassant() {
		isCaptureOrPawnMove = true
		u.IsEnPassant = true
		epSq := to
		if us == White {
			epSq = Square(uint8(to) - 8)
		} else {
			epSq = Square(uint8(to) + 8)
		}
		u.EpCaptureSquare = epSq
		u.CapturedPiece = Pawn
		u.CapturedColor = them
		p.clearSquare(epSq)
	} else if capturedPiece, capturedColor := p.PieceAt(to); capturedPiece != Nothing {
		isCaptureOrPawnMove = true
		u.CapturedPiece = capturedPiece
		u.CapturedColor = capturedColor
	}

	if isCaptureOrPawnMove {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.FullmoveNumber++
	}

	// clear en-passant hash contribution now; the new target (if any)
	// is set further below, after castling/capture bookkeeping.
	p.hash ^= epHashKey(p.EnPassant)
	p.EnPassant = noEnPassant

	if u.CapturedPiece != Nothing && !m.IsEnPassant() {
		p.clearSquare(to)
	}

	p.clearSquare(from)
	destKind := movedKind
	if promo := m.Promote(); promo != Nothing {
		destKind = promo
	} else if movedKind == Pawn && (to.Rank() == 7 || to.Rank() == 0) {
		destKind = Queen // no promotion code: default to a queen
	}
	p.setSquare(to, destKind, us)

	if movedKind == King {
		if us == White {
			p.stripCastleRight(castleWhiteQueenside)
			p.stripCastleRight(castleWhiteKingside)
		} else {
			p.stripCastleRight(castleBlackQueenside)
			p.stripCastleRight(castleBlackKingside)
		}
	}
	if movedKind == Rook {
		stripRookOrigin(p, us, from)
	}
	if u.CapturedPiece == Rook {
		stripRookOrigin(p, them, to)
	}

	if m.IsCastle() {
		u.IsCastle = true
		rank := uint8(0)
		if us == Black {
			rank = 7
		}
		if to.File() == 6 { // kingside: king lands on g-file
			u.RookFrom, u.RookTo = Square(rank*8+7), Square(rank*8+5)
		} else { // queenside: king lands on c-file
			u.RookFrom, u.RookTo = Square(rank*8+0), Square(rank*8+3)
		}
		p.clearSquare(u.RookFrom)
		p.setSquare(u.RookTo, Rook, us)
	}

	if movedKind == Pawn {
		diff := int(to) - int(from)
		if diff == 16 {
			p.EnPassant = Square(uint8(from) + 8)
		} else if diff == -16 {
			p.EnPassant = Square(uint8(from) - 8)
		}
	}
	p.hash ^= epHashKey(p.EnPassant)

	p.SideToMove = them
	p.hash ^= sideToMoveKey

	p.History = append(p.History, p.hash)
	return u
}

// stripRookOrigin removes the castling right associated with the rook's
// starting square on side, if the square that just moved/was captured
// was in fact that corner square.
func stripRookOrigin(p *Position, side Color, sq Square) {
	rank := uint8(0)
	qsBit, ksBit := castleWhiteQueenside, castleWhiteKingside
	if side == Black {
		rank = 7
		qsBit, ksBit = castleBlackQueenside, castleBlackKingside
	}
	if sq.Rank() != rank {
		return
	}
	switch sq.File() {
	case 0:
		p.stripCastleRight(qsBit)
	case 7:
		p.stripCastleRight(ksBit)
	}
}

// UnmakeMove reverses the effect of the MakeMove call that produced u. It
// must be called with the same move/undo pair, in strict LIFO order with
// any other MakeMove/UnmakeMove calls.
func (p *Position) UnmakeMove(u Undo) {
	p.History = p.History[:len(p.History)-1]

	them := p.SideToMove
	us := them.Other()
	p.SideToMove = us

	from, to := u.Move.From(), u.Move.To()

	if u.IsCastle {
		p.clearSquare(u.RookTo)
		p.setSquare(u.RookFrom, Rook, us)
	}

	p.clearSquare(to)
	p.setSquare(from, u.MovedPieceKind, us)

	if u.IsEnPassant {
		p.setSquare(u.EpCaptureSquare, Pawn, u.CapturedColor)
	} else if u.CapturedPiece != Nothing {
		p.setSquare(to, u.CapturedPiece, u.CapturedColor)
	}

	p.castleRights = u.PriorCastleRights
	p.EnPassant = u.PriorEnPassant
	p.HalfmoveClock = u.PriorHalfmoveClock
	p.FullmoveNumber = u.PriorFullmoveNumber
	p.hash = u.PriorHash
	p.termination = TerminationNone
}

// MakeNullMove passes the turn without moving a piece: it clears any
// en-passant target and flips the side to move. It must be paired with
// UnmakeNullMove in LIFO order. Not used by the searcher in this package
// (null-move pruning is out of scope), but available as a cheap,
// hash-consistent primitive for probing "what if it were the other
// side's move" positions.
func (p *Position) MakeNullMove() Undo {
	u := Undo{
		PriorEnPassant:      p.EnPassant,
		PriorHash:           p.hash,
		PriorHalfmoveClock:  p.HalfmoveClock,
		PriorFullmoveNumber: p.FullmoveNumber,
		EpCaptureSquare:     noEnPassant,
	}
	p.hash ^= epHashKey(p.EnPassant)
	p.EnPassant = noEnPassant
	p.SideToMove = p.SideToMove.Other()
	p.hash ^= sideToMoveKey
	p.History = append(p.History, p.hash)
	return u
}

// UnmakeNullMove reverses MakeNullMove.
func (p *Position) UnmakeNullMove(u Undo) {
	p.History = p.History[:len(p.History)-1]
	p.SideToMove = p.SideToMove.Other()
	p.EnPassant = u.PriorEnPassant
	p.HalfmoveClock = u.PriorHalfmoveClock
	p.FullmoveNumber = u.PriorFullmoveNumber
	p.hash = u.PriorHash
	p.termination = TerminationNone
}
