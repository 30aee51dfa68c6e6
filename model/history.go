package model

// defaultHistorySize keeps enough generations to spot period-3 cycles
const defaultHistorySize = 5

// History remembers the hashes of recent generations so a driver can
// detect a board that has settled into a still life or short cycle.
// It keeps hashes only; boards cannot be restored from it.
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History holding at most size hashes
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record appends a generation hash, dropping the oldest beyond capacity
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three recorded
// generations: a still life, or an oscillator of period 2 or 3
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets every recorded hash
func (h *History) Clear() {
	h.hashes = nil
}
