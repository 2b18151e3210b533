package kestrel

import "math/bits"

// GenerateLegalMoves returns every legal move available to the side to
// move. It follows a two-stage contract rather than tracking pins ahead
// of generation: first generate pseudo-legal moves per piece type from
// the bitboards, then for each candidate, make it, ask whether our own
// king is attacked, and unmake it. This is a simpler, slower baseline
// than pin-tracking, which is the tradeoff this package is built around.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.generatePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	us := p.SideToMove
	for _, m := range pseudo {
		u := p.MakeMove(m)
		if !p.IsSquareAttacked(p.kingSquare(us), us.Other()) {
			legal = append(legal, m)
		}
		p.UnmakeMove(u)
	}
	return legal
}

// IsLegal reports whether m is among the side to move's legal moves.
func (p *Position) IsLegal(m Move) bool {
	for _, lm := range p.GenerateLegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

func (p *Position) generatePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	us := p.SideToMove
	own := p.bitboardsFor(us)

	p.genPawnMoves(us, &moves)
	genLeaperMoves(own.Knights, own.All, knightAttacks[:], &moves)
	p.genSliderMoves(own.Bishops, Bishop, &moves)
	p.genSliderMoves(own.Rooks, Rook, &moves)
	p.genSliderMoves(own.Queens, Queen, &moves)
	genLeaperMoves(own.Kings, own.All, kingAttacks[:], &moves)
	p.genCastleMoves(us, &moves)
	return moves
}

func genMovesFromTargets(moves *[]Move, from Square, targets uint64) {
	for targets != 0 {
		to := Square(bits.TrailingZeros64(targets))
		targets &= targets - 1
		*moves = append(*moves, NewMove(from, to, Nothing))
	}
}

// genLeaperMoves generates moves for knights or kings: pieces whose
// attack set is a fixed precomputed table indexed by source square.
func genLeaperMoves(pieces, ownOccupied uint64, table []uint64, moves *[]Move) {
	for pieces != 0 {
		from := Square(bits.TrailingZeros64(pieces))
		pieces &= pieces - 1
		targets := table[from] &^ ownOccupied
		genMovesFromTargets(moves, from, targets)
	}
}

func (p *Position) genSliderMoves(pieces uint64, kind Piece, moves *[]Move) {
	own := p.bitboardsFor(p.SideToMove)
	occupied := p.White.All | p.Black.All
	for pieces != 0 {
		from := Square(bits.TrailingZeros64(pieces))
		pieces &= pieces - 1
		var targets uint64
		switch kind {
		case Bishop:
			targets = bishopAttacks(from, occupied)
		case Rook:
			targets = rookAttacks(from, occupied)
		case Queen:
			targets = queenAttacks(from, occupied)
		}
		targets &^= own.All
		genMovesFromTargets(moves, from, targets)
	}
}

const promoRankWhite = 7
const promoRankBlack = 0

func addPawnMove(moves *[]Move, from, to Square, promoRank uint8) {
	if to.Rank() == promoRank {
		for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, NewMove(from, to, promo))
		}
		return
	}
	*moves = append(*moves, NewMove(from, to, Nothing))
}

func (p *Position) genPawnMoves(us Color, moves *[]Move) {
	own := p.bitboardsFor(us)
	opp := p.bitboardsFor(us.Other())
	occupied := p.White.All | p.Black.All
	empty := ^occupied
	pawns := own.Pawns

	var epBit uint64
	if p.EnPassant != noEnPassant {
		epBit = p.EnPassant.bit()
	}

	if us == White {
		single := pawns << 8 & empty
		double := single << 8 & onlyRank[3] & empty
		rawEast := (pawns &^ onlyFile[7]) << 9
		rawWest := (pawns &^ onlyFile[0]) << 7

		for t := single; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			addPawnMove(moves, Square(uint8(to)-8), to, promoRankWhite)
		}
		for t := double; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			*moves = append(*moves, NewMove(Square(uint8(to)-16), to, Nothing))
		}
		capEast := rawEast & opp.All
		capWest := rawWest & opp.All
		for t := capEast; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			addPawnMove(moves, Square(uint8(to)-9), to, promoRankWhite)
		}
		for t := capWest; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			addPawnMove(moves, Square(uint8(to)-7), to, promoRankWhite)
		}
		if epBit != 0 {
			if rawEast&epBit != 0 {
				*moves = append(*moves, NewEnPassantMove(Square(uint8(p.EnPassant)-9), p.EnPassant))
			}
			if rawWest&epBit != 0 {
				*moves = append(*moves, NewEnPassantMove(Square(uint8(p.EnPassant)-7), p.EnPassant))
			}
		}
	} else {
		single := pawns >> 8 & empty
		double := single >> 8 & onlyRank[4] & empty
		rawEast := (pawns &^ onlyFile[7]) >> 7
		rawWest := (pawns &^ onlyFile[0]) >> 9

		for t := single; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			addPawnMove(moves, Square(uint8(to)+8), to, promoRankBlack)
		}
		for t := double; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			*moves = append(*moves, NewMove(Square(uint8(to)+16), to, Nothing))
		}
		capEast := rawEast & opp.All
		capWest := rawWest & opp.All
		for t := capEast; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			addPawnMove(moves, Square(uint8(to)+7), to, promoRankBlack)
		}
		for t := capWest; t != 0; {
			to := Square(bits.TrailingZeros64(t))
			t &= t - 1
			addPawnMove(moves, Square(uint8(to)+9), to, promoRankBlack)
		}
		if epBit != 0 {
			if rawEast&epBit != 0 {
				*moves = append(*moves, NewEnPassantMove(Square(uint8(p.EnPassant)+7), p.EnPassant))
			}
			if rawWest&epBit != 0 {
				*moves = append(*moves, NewEnPassantMove(Square(uint8(p.EnPassant)+9), p.EnPassant))
			}
		}
	}
}

// genCastleMoves adds pseudo-legal castling moves: it checks rights, an
// empty path between king and rook, that the king is not currently in
// check, and that neither the square it passes through nor its
// destination is attacked. The final make/is-attacked/unmake pass in
// GenerateLegalMoves still re-checks the destination, which is
// redundant here but harmless, and is what actually enforces legality.
func (p *Position) genCastleMoves(us Color, moves *[]Move) {
	occupied := p.White.All | p.Black.All
	rank := uint8(0)
	if us == Black {
		rank = 7
	}
	kingSq := Square(rank*8 + 4)
	if p.mailbox[kingSq] != King || p.mailboxColor[kingSq] != us {
		return
	}
	if p.IsSquareAttacked(kingSq, us.Other()) {
		return
	}

	qsBit, ksBit := castleWhiteQueenside, castleWhiteKingside
	if us == Black {
		qsBit, ksBit = castleBlackQueenside, castleBlackKingside
	}

	if p.castleRights&ksBit != 0 {
		f, g := Square(rank*8+5), Square(rank*8+6)
		if occupied&(f.bit()|g.bit()) == 0 &&
			!p.IsSquareAttacked(f, us.Other()) && !p.IsSquareAttacked(g, us.Other()) {
			*moves = append(*moves, NewCastleMove(kingSq, g))
		}
	}
	if p.castleRights&qsBit != 0 {
		b, c, d := Square(rank*8+1), Square(rank*8+2), Square(rank*8+3)
		if occupied&(b.bit()|c.bit()|d.bit()) == 0 &&
			!p.IsSquareAttacked(d, us.Other()) && !p.IsSquareAttacked(c, us.Other()) {
			*moves = append(*moves, NewCastleMove(kingSq, c))
		}
	}
}
