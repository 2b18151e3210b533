package kestrel

// Perft counts the number of legal positions reachable from p after
// exactly depth plies, by recursively making and unmaking every legal
// move. It is the correctness oracle for the move generator: known
// positions have known perft counts at each depth, and any mismatch
// points at a move generation bug.
//
// depth == 0 is handled before any per-ply buffer is allocated, so
// calling Perft(p, 0) never touches the heap.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	layers := make([][]Move, depth)
	return perftInner(p, depth, layers)
}

func perftInner(p *Position, depth int, layers [][]Move) uint64 {
	if depth == 0 {
		return 1
	}
	layers[0] = append(layers[0][:0], p.GenerateLegalMoves()...)
	rest := layers[1:]

	var nodes uint64
	for _, m := range layers[0] {
		u := p.MakeMove(m)
		nodes += perftInner(p, depth-1, rest)
		p.UnmakeMove(u)
	}
	return nodes
}

// Divide runs perft one ply deep and reports the node count contributed
// by each legal root move, which is the standard way to localize a
// move-generation discrepancy against a reference engine.
func Divide(p *Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	for _, m := range p.GenerateLegalMoves() {
		u := p.MakeMove(m)
		result[m.String()] = Perft(p, depth-1)
		p.UnmakeMove(u)
	}
	return result
}
