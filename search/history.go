package search

// history is a stack of position hashes visited along the current
// search line, seeded from the real game history at the root so draws
// by repetition are detected even when the repeated position only
// partly lies in the actual game (the rest being hypothetical moves
// explored by the search itself).
type history struct {
	hashes []uint64
}

func newHistory(seed []uint64) *history {
	h := &history{hashes: make([]uint64, len(seed), len(seed)+64)}
	copy(h.hashes, seed)
	return h
}

func (h *history) push(hash uint64) { h.hashes = append(h.hashes, hash) }
func (h *history) pop()             { h.hashes = h.hashes[:len(h.hashes)-1] }

// count returns how many times hash appears among plies sharing the
// current side to move, walking backward two plies at a time, and
// including the hash passed in as its own first occurrence.
func (h *history) count(hash uint64) int {
	count := 0
	for i := len(h.hashes) - 1; i >= 0; i -= 2 {
		if h.hashes[i] == hash {
			count++
		}
	}
	return count
}
