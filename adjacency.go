package main

import "slices"

// reconstructRun rebuilds the maximal contiguous run of letters through
// (row, col) along dir. The outward scan in each direction is bounded by
// maxLen, the longest word in the working list: a run still open after
// maxLen cells on one side cannot be a word, and truncating it instead
// could false-positive against a shorter word, so ok=false is returned.
func reconstructRun(g grid, row, col int, dir Direction, maxLen int) (run string, ok bool) {
	dr, dc := 0, 1
	if dir == Vertical {
		dr, dc = 1, 0
	}

	letters := []rune{g.get(row, col)}

	// Extend backward (up or left) to the start of the run.
	for i := 1; ; i++ {
		r, c := row-i*dr, col-i*dc
		if r < 0 || c < 0 || g.get(r, c) == blank {
			break
		}
		if i == maxLen {
			return "", false
		}
		letters = append([]rune{g.get(r, c)}, letters...)
	}

	// Extend forward (down or right) to the end of the run.
	for i := 1; ; i++ {
		r, c := row+i*dr, col+i*dc
		if r >= g.size() || c >= g.size() || g.get(r, c) == blank {
			break
		}
		if i == maxLen {
			return "", false
		}
		letters = append(letters, g.get(r, c))
	}

	return string(letters), true
}

// isKnownWord reports whether run is exactly one of the working words.
func isKnownWord(run string, words []string) bool {
	return slices.Contains(words, run)
}

// formsKnownWord answers the validator's question about a letter sitting
// beside a pending placement: does it belong to a legitimate word running
// along dir, or is it an orphan that the placement would turn into
// garbage? maxLen bounds the run scan.
func formsKnownWord(g grid, row, col int, dir Direction, words []string, maxLen int) bool {
	run, ok := reconstructRun(g, row, col, dir, maxLen)
	return ok && isKnownWord(run, words)
}
