package model

// History keeps the hashes of the most recent generations so a driver can
// notice oscillators, which Step never reports as stable
type History struct {
	limit  int
	hashes []string
}

// NewHistory creates a history remembering up to limit generations
func NewHistory(limit int) *History {
	return &History{limit: max(1, limit)}
}

// Repeats reports whether hash matches any remembered generation
func (h *History) Repeats(hash string) bool {
	for _, seen := range h.hashes {
		if seen == hash {
			return true
		}
	}
	return false
}

// Add records hash, dropping the oldest entry once the limit is reached
func (h *History) Add(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}
