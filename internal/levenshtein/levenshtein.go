// internal/levenshtein/levenshtein.go
//
// Levenshtein edit distance used to score guesses.
// Responsibilities:
//   - Exact distance between two strings (unit insert/delete/substitute costs).
//   - Bounded check ("is the distance at most k?") with early termination.
//
// Notes:
//   - Strings are compared rune by rune.
//   - A single DP row sized by the shorter string is kept, so auxiliary
//     space is O(min(len(a), len(b))).
package levenshtein

// Bound is an optional upper limit for a distance computation.
// The zero value is unbounded.
type Bound struct {
	max     int
	limited bool
}

// Unbounded asks for the exact distance.
func Unbounded() Bound { return Bound{} }

// AtMost asks only whether the distance is <= k.
func AtMost(k int) Bound { return Bound{max: k, limited: true} }

// Limited reports whether the bound carries a maximum, and returns it.
func (b Bound) Limited() (int, bool) { return b.max, b.limited }

// Result of a Compute call.
type Result struct {
	Distance int  // exact distance; only meaningful when Exceeded is false
	Exceeded bool // true when a bound was given and the distance is above it
}

// Distance returns the exact Levenshtein distance between a and b.
func Distance(a, b string) int {
	return Compute(a, b, Unbounded()).Distance
}

// Within reports whether the Levenshtein distance between a and b is at most k.
// A negative k is never satisfied.
func Within(a, b string, k int) bool {
	return !Compute(a, b, AtMost(k)).Exceeded
}

// Compute runs a single-row Wagner–Fischer over a and b.
//
// With a limited bound the computation stops as soon as the smallest value in
// the current row is above the bound: every cell of the next row is derived
// from cells of this row plus a non-negative cost, so no later row (and in
// particular not the final cell) can come back under it.
func Compute(a, b string, bound Bound) Result {
	if bound.limited && bound.max < 0 {
		return exceeded()
	}
	if a == b {
		return Result{}
	}

	ra, rb := []rune(a), []rune(b)
	if bound.limited && abs(len(ra)-len(rb)) > bound.max {
		return exceeded()
	}
	if len(ra) == 0 {
		return bound.check(len(rb))
	}
	if len(rb) == 0 {
		return bound.check(len(ra))
	}
	// rb indexes the row, keep it the shorter one.
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		rowMin := i
		for j := 1; j <= len(rb); j++ {
			above := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = min(above+1, row[j-1]+1, diag+cost)
			diag = above
			if row[j] < rowMin {
				rowMin = row[j]
			}
		}
		if bound.limited && rowMin > bound.max {
			return exceeded()
		}
	}
	return bound.check(row[len(rb)])
}

func (b Bound) check(d int) Result {
	if b.limited && d > b.max {
		return exceeded()
	}
	return Result{Distance: d}
}

func exceeded() Result { return Result{Exceeded: true} }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
