// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leximatch

// merge folds one newly-found complete assignment into the current
// best result: replace when it is strictly better, append when it
// ties, discard when it is worse.
func merge(best Result, d Distribution, a Assignment) Result {
	if !best.Present {
		return Result{Present: true, Distribution: d, Assignments: []Assignment{a}}
	}
	switch Compare(d, best.Distribution) {
	case LT:
		return Result{Present: true, Distribution: d, Assignments: []Assignment{a}}
	case EQ:
		assignments := make([]Assignment, len(best.Assignments)+1)
		copy(assignments, best.Assignments)
		assignments[len(best.Assignments)] = a
		return Result{Present: true, Distribution: best.Distribution, Assignments: assignments}
	default:
		return best
	}
}

// TidiedResult is a display-only projection of a Result: the first
// tied assignment in full, and every subsequent one reduced to just
// the entries where it differs from the first. Tidying never mutates
// the stored Result; it is purely a view for a consumer that wants to
// highlight variation among ties instead of repeating whole tables.
type TidiedResult struct {
	Distribution Distribution
	First        Assignment
	Diffs        []Assignment
}

// Tidy projects r's tied assignments against the first one. It returns
// the zero TidiedResult if r has no result yet.
func Tidy(r Result) TidiedResult {
	if !r.Present || len(r.Assignments) == 0 {
		return TidiedResult{}
	}
	first := r.Assignments[0]
	diffs := make([]Assignment, 0, len(r.Assignments)-1)
	for _, a := range r.Assignments[1:] {
		diff := make(Assignment)
		for person, placement := range a {
			if fp, ok := first[person]; !ok || fp.Position != placement.Position {
				diff[person] = placement
			}
		}
		diffs = append(diffs, diff)
	}
	return TidiedResult{Distribution: r.Distribution, First: first, Diffs: diffs}
}
