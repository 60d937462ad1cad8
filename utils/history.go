package utils

// historySize is how many recent grid hashes are kept, enough to spot
// still lifes and oscillators up to period 3
const historySize = 5

// History remembers hashes of recent generations so the driver can notice a
// board that has settled into a still life or a short cycle
type History struct {
	hashes []string
}

// Seen reports whether hash matches one of the last three recorded
// generations, then records it
func (h *History) Seen(hash string) bool {
	repeat := false
	for k := 1; k <= 3 && k <= len(h.hashes); k++ {
		if h.hashes[len(h.hashes)-k] == hash {
			repeat = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return repeat
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
