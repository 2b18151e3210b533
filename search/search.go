package search

import (
	"math"

	"github.com/kestrelchess/kestrel"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("kestrel/search")

// Mate is the score magnitude assigned to a checkmate, discounted by
// distance from the root (ply) so the search prefers a shorter mate
// over a longer one and avoids a longer escape from being mated.
const Mate int32 = 1_000_000

// Outcome is what a search run reports back to its caller.
type Outcome struct {
	BestMove kestrel.Move
	Score    int32
	Nodes    uint64
	Stopped  bool
}

// PickBestMove runs an iterative root search to limits.DepthCap (or
// until limits.TimeControl stops it) and returns the best move found
// along with fail-soft alpha-beta's score for it. If eval is nil, the
// default Material evaluator is used.
func PickBestMove(pos *kestrel.Position, limits Limits, eval Evaluator) Outcome {
	if eval == nil {
		eval = Material
	}
	tc := limits.TimeControl
	tc.Start()
	log.Debugf("search start: depth=%d fen=%s", limits.DepthCap, pos.ToFEN())

	h := newHistory(pos.History)
	var nodes uint64

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		score := terminalScore(pos, 0)
		log.Debugf("search end: no legal moves, score=%d", score)
		return Outcome{Score: score, Nodes: 1}
	}

	bestMove := moves[0]
	bestScore := int32(math.MinInt32)
	stopped := false
	for _, m := range moves {
		u := pos.MakeMove(m)
		h.push(pos.Hash())
		score, st := negamax(pos, limits.DepthCap-1, 1, -Mate-1, Mate+1, h, &nodes, tc, eval)
		score = -score
		h.pop()
		pos.UnmakeMove(u)

		if st {
			stopped = true
			break
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}

	log.Debugf("search end: best=%s score=%d nodes=%d stopped=%v", bestMove, bestScore, nodes, stopped)
	return Outcome{BestMove: bestMove, Score: bestScore, Nodes: nodes, Stopped: stopped}
}

// terminalScore scores a position with no legal moves: checkmate
// (discounted by ply so the search favors the quickest mate) or
// stalemate (a draw).
func terminalScore(pos *kestrel.Position, ply int) int32 {
	if pos.InCheck(pos.SideToMove) {
		return -(Mate - int32(ply))
	}
	return 0
}

// negamax implements fail-soft alpha-beta. The four draw/terminal
// checks are applied in a fixed order — fifty-move rule, then
// repetition, then insufficient material, then no-legal-moves — because
// any of the first three makes generating moves at all unnecessary, and
// because that is the order in which a position can newly become drawn
// as a move is played.
func negamax(pos *kestrel.Position, depth, ply int, alpha, beta int32, h *history, nodes *uint64, tc *TimeControl, eval Evaluator) (int32, bool) {
	*nodes++
	if ShouldCheckTime(*nodes) {
		if tc.CheckTime() {
			return 0, true
		}
	} else if tc.IsStopped() {
		return 0, true
	}

	if pos.HalfmoveClock >= 100 {
		return 0, false
	}
	if h.count(pos.Hash()) >= 3 {
		return 0, false
	}
	if pos.IsInsufficientMaterial() {
		return 0, false
	}

	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		return terminalScore(pos, ply), false
	}

	if depth <= 0 {
		return eval(pos), false
	}

	best := int32(math.MinInt32)
	for _, m := range moves {
		u := pos.MakeMove(m)
		h.push(pos.Hash())
		score, stopped := negamax(pos, depth-1, ply+1, -beta, -alpha, h, nodes, tc, eval)
		score = -score
		h.pop()
		pos.UnmakeMove(u)

		if stopped {
			return 0, true
		}
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, false
}
