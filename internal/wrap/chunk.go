package wrap

// Chunks splits a single paragraph (no newlines) into lines at space
// characters. The first line may hold at most firstLimit runes and every
// later line at most limit runes. The split for each line is the furthest
// space that keeps the line within its limit; that space is dropped. A word
// too long for its line is emitted whole on a line of its own.
//
// Chunks always returns at least one element; empty text yields [""].
func Chunks(text string, firstLimit, limit int) []string {
	if text == "" {
		return []string{""}
	}

	// offs maps rune index to byte offset; invalid bytes count as one rune
	// each and are carried through untouched.
	offs := make([]int, 0, len(text)+1)
	// Candidate split points (rune indices): every space, plus the end.
	bounds := make([]int, 0, 8)
	for i := range text {
		if text[i] == ' ' {
			bounds = append(bounds, len(offs))
		}
		offs = append(offs, i)
	}
	n := len(offs)
	offs = append(offs, len(text))
	bounds = append(bounds, n)

	var chunks []string
	start := 0
	lim := firstLimit
	for start < n {
		if start != 0 {
			lim = limit
		}

		// Furthest boundary within reach; bounds is ascending.
		pick := -1
		for i, b := range bounds {
			if b > start+lim {
				break
			}
			pick = i
		}
		if pick < 0 {
			// Nothing fits: run to the end of the current word.
			pick = 0
		}

		split := bounds[pick]
		chunks = append(chunks, text[offs[start]:offs[split]])
		bounds = bounds[pick+1:]
		// Skip the separating space (or step past the end sentinel).
		start = split + 1
	}
	return chunks
}
