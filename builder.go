package main

import "math/rand/v2"

// buildCrossword runs one attempt on a fresh grid: the longest word goes
// down first at a random position, then every remaining word, longest to
// shortest, takes its best placement or is skipped. First fit only — a
// skipped word is not retried within the attempt; the driver's retry
// loop is what escapes bad sequences. The returned placement map is
// keyed by 1-based slot in sorted order and is complete iff its size
// equals len(sorted).
func buildCrossword(g grid, sorted []string, rng *rand.Rand) map[int]Placement {
	placements := make(map[int]Placement, len(sorted))

	placeFirst(g, sorted[0], rng, placements)

	maxLen := len([]rune(sorted[0]))
	for i, word := range sorted[1:] {
		cand, ok := findBestPlacement(g, word, sorted, maxLen)
		if !ok {
			continue
		}
		placeWord(g, word, cand.letterIdx, cand.row, cand.col, cand.dir, placements, i+2)
	}

	return placements
}

// placeFirst writes the seed word at a random orientation and a random
// offset along the axis perpendicular to it, flush with the grid edge.
// This is the attempt's only draw of randomness.
func placeFirst(g grid, word string, rng *rand.Rand, placements map[int]Placement) {
	if rng.IntN(2) == 0 {
		placeWord(g, word, 0, rng.IntN(g.size()), 0, Horizontal, placements, 1)
	} else {
		placeWord(g, word, 0, 0, rng.IntN(g.size()), Vertical, placements, 1)
	}
}

// placeWord writes word through the matched cell (row, col), offset back
// by letterIdx along dir, and records the placement under slot.
func placeWord(g grid, word string, letterIdx, row, col int, dir Direction, placements map[int]Placement, slot int) {
	startR, startC := row, col
	dr, dc := 0, 1
	if dir == Vertical {
		dr, dc = 1, 0
	}
	startR -= letterIdx * dr
	startC -= letterIdx * dc

	placements[slot] = Placement{Word: word, Row: startR, Col: startC, Direction: dir}
	for i, ch := range []rune(word) {
		g.set(startR+i*dr, startC+i*dc, ch)
	}
}
