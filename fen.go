package kestrel

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a 6-field FEN record into a fresh Position. Fields 5
// (halfmove clock) and 6 (fullmove number) default to 0 and 1 if the
// string omits them, matching common relaxed-FEN usage.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("kestrel: FEN %q needs at least 4 fields, got %d", fen, len(fields))
	}
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	p := &Position{EnPassant: noEnPassant}
	if err := parseFENBoard(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("kestrel: FEN %q has invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				p.castleRights |= castleWhiteKingside
			case 'Q':
				p.castleRights |= castleWhiteQueenside
			case 'k':
				p.castleRights |= castleBlackKingside
			case 'q':
				p.castleRights |= castleBlackQueenside
			default:
				return nil, fmt.Errorf("kestrel: FEN %q has invalid castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := AlgebraicToIndex(fields[3])
		if err != nil {
			return nil, fmt.Errorf("kestrel: FEN %q has invalid en-passant field: %w", fen, err)
		}
		p.EnPassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("kestrel: FEN %q has invalid halfmove clock: %w", fen, err)
	}
	p.HalfmoveClock = uint8(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("kestrel: FEN %q has invalid fullmove number: %w", fen, err)
	}
	p.FullmoveNumber = uint16(fullmove)

	p.recomputeHash()
	p.History = append(p.History, p.hash)
	return p, nil
}

func parseFENBoard(p *Position, board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("kestrel: FEN board %q must have 8 ranks, got %d", board, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for _, r := range rankStr {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			if file >= 8 {
				return fmt.Errorf("kestrel: FEN rank %q overflows the board", rankStr)
			}
			piece, color, err := pieceFromFENRune(r)
			if err != nil {
				return err
			}
			sq := Square(rank*8 + file)
			p.mailbox[sq] = piece
			p.mailboxColor[sq] = color
			bb := p.bitboardsFor(color)
			*bb.pieceBitboard(piece) |= sq.bit()
			bb.All |= sq.bit()
			file++
		}
	}
	return nil
}

func pieceFromFENRune(r rune) (Piece, Color, error) {
	color := White
	lower := r
	if r >= 'a' && r <= 'z' {
		color = Black
	} else {
		lower = r + ('a' - 'A')
	}
	switch lower {
	case 'p':
		return Pawn, color, nil
	case 'n':
		return Knight, color, nil
	case 'b':
		return Bishop, color, nil
	case 'r':
		return Rook, color, nil
	case 'q':
		return Queen, color, nil
	case 'k':
		return King, color, nil
	default:
		return Nothing, White, fmt.Errorf("kestrel: invalid FEN piece rune %q", r)
	}
}

func pieceToFENRune(p Piece, c Color) rune {
	var r rune
	switch p {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	}
	if c == White {
		r -= 'a' - 'A'
	}
	return r
}

// ToFEN serializes the position back to a 6-field FEN string. A 6-field
// FEN with single spaces and castling rights in KQkq order round-trips
// byte for byte; omitted clock fields come back as "0 1".
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			piece, color := p.PieceAt(sq)
			if piece == Nothing {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceToFENRune(piece, color))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castleRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.castleRights&castleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castleRights&castleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castleRights&castleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castleRights&castleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EnPassant == noEnPassant {
		sb.WriteByte('-')
	} else {
		sb.WriteString(IndexToAlgebraic(p.EnPassant))
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}
