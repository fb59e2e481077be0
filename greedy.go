// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leximatch

import (
	"fmt"
	"sort"
)

// GreedyAssigner is the superseded heuristic this module replaces with
// the exact leximin solver (see State and NewState). It is kept only
// as a reference for comparison: rsdmatch's own GreedyMatcher sorted
// (supplier, buyer) affinity pairs into price-sensitivity buckets and
// apportioned each supplier's remaining capacity across buyers in
// bucket order. GreedyAssigner keeps that bucketed, earliest-bucket-
// first shape, but assigns whole people to whole slots instead of
// apportioning divisible bandwidth: a rank takes the place of a price,
// and a position's slot count takes the place of a supplier's
// capacity.
//
// Unlike the leximin solver, GreedyAssigner gives no optimality
// guarantee: it can leave a person at a far worse rank than the exact
// solver would, simply because an earlier bucket claimed their
// position first. See cmd/leximatchctl's "bench" subcommand for a
// side-by-side comparison on the same input.
type GreedyAssigner struct {
	// RankSensitivity groups ranks into buckets of this width before
	// sorting; ranks within the same bucket are treated as tied and
	// broken by person id, then position id. A non-positive value
	// disables bucketing (every rank is its own bucket).
	RankSensitivity Rank
	Verbose         bool
}

type greedyCandidate struct {
	person   Person
	position Position
	rank     Rank
}

func (g GreedyAssigner) bucketOf(r Rank) Rank {
	if g.RankSensitivity <= 0 {
		return r
	}
	return r / g.RankSensitivity
}

// Assign greedily places people into positions, earliest rank bucket
// first. perfect reports whether every position's slots ended up
// filled.
func (g GreedyAssigner) Assign(input Input) (assignment Assignment, perfect bool) {
	cands := make([]greedyCandidate, 0, len(input.Preferences))
	for _, p := range input.Preferences {
		cands = append(cands, greedyCandidate{person: p.Person, position: p.Position, rank: p.Rank})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		bi, bj := g.bucketOf(cands[i].rank), g.bucketOf(cands[j].rank)
		if bi != bj {
			return bi < bj
		}
		if cands[i].person != cands[j].person {
			return cands[i].person < cands[j].person
		}
		return cands[i].position < cands[j].position
	})

	remaining := make(map[Position]int, len(input.Slots))
	for pos, n := range input.Slots {
		remaining[pos] = n
	}

	assignment = make(Assignment, len(input.Slots))
	placed := make(map[Person]bool, len(cands))

	for i := 0; i < len(cands); i++ {
		c := cands[i]
		if placed[c.person] || remaining[c.position] <= 0 {
			continue
		}
		assignment[c.person] = Placement{Position: c.position, Rank: c.rank}
		remaining[c.position]--
		placed[c.person] = true

		if g.Verbose {
			fmt.Println(c.person, "->", c.position, "rank", c.rank)
		}
	}

	perfect = true
	for _, n := range remaining {
		if n > 0 {
			perfect = false
			break
		}
	}
	return assignment, perfect
}
