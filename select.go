// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leximatch

import "sort"

// Candidate is a branch the search may take: place person on position
// at rank.
type Candidate struct {
	Person   Person
	Position Position
	Rank     Rank
}

// analysis is the per-node work shared by branch selection and
// bounding: for every position with remaining slots, its shortlist of
// the best-ranked remaining candidates. It is computed once per node
// (see (State).Step) since both selectBranch and bound need it; an
// infeasible node is discarded by Step without bound being called.
type analysis struct {
	shortlists map[Position][]Candidate
	feasible   bool
}

// analyze groups space's remaining preferences by position, and for
// each position with k remaining slots keeps the k candidates with the
// lowest (best) rank, ties broken by person id. A position whose
// candidate count is below its slot count makes the whole node
// infeasible: no completion can fill every slot.
func analyze(space Space) analysis {
	byPosition := make(map[Position][]Candidate, len(space.Slots))
	for k, r := range space.Prefs {
		byPosition[k.Position] = append(byPosition[k.Position], Candidate{
			Person: k.Person, Position: k.Position, Rank: r,
		})
	}

	a := analysis{shortlists: make(map[Position][]Candidate, len(space.Slots)), feasible: true}
	for pos, need := range space.Slots {
		cs := byPosition[pos]
		if len(cs) < need {
			a.feasible = false
			continue
		}
		sort.Slice(cs, func(i, j int) bool {
			if cs[i].Rank != cs[j].Rank {
				return cs[i].Rank < cs[j].Rank
			}
			return cs[i].Person < cs[j].Person
		})
		a.shortlists[pos] = cs[:need]
	}
	return a
}

// selectBranch picks the position whose best remaining claimant has
// the highest (worst) rank — the position where even its most
// enthusiastic candidate is least enthusiastic — and returns that
// candidate. Ties between positions are broken by position id so
// traversal stays deterministic. ok is false when the node is
// infeasible.
func (a analysis) selectBranch() (cand Candidate, ok bool) {
	if !a.feasible {
		return Candidate{}, false
	}
	var bestPos Position
	found := false
	for pos, list := range a.shortlists {
		head := list[0]
		if !found || head.Rank > cand.Rank || (head.Rank == cand.Rank && pos < bestPos) {
			cand, bestPos, found = head, pos, true
		}
	}
	return cand, found
}

// bound computes the optimistic best-achievable distribution for
// space's subtree, joined with the ranks already committed in
// space.Partial. ok is false when the node is infeasible, in which
// case the bound must be treated as unknown and the node pruned.
func bound(space Space, a analysis) (Distribution, bool) {
	if !a.feasible {
		return nil, false
	}

	var positionRanks []Rank
	for _, list := range a.shortlists {
		for _, c := range list {
			positionRanks = append(positionRanks, c.Rank)
		}
	}
	positionWise := Count(positionRanks)

	minByPerson := make(map[Person]Rank, len(space.Prefs))
	for k, r := range space.Prefs {
		if cur, ok := minByPerson[k.Person]; !ok || r < cur {
			minByPerson[k.Person] = r
		}
	}
	personRanks := make([]Rank, 0, len(minByPerson))
	for _, r := range minByPerson {
		personRanks = append(personRanks, r)
	}
	personWise := Count(personRanks)

	best := positionWise
	if Compare(positionWise, personWise) == GT {
		best = personWise
	}

	return best.Join(distributionOf(space.Partial)), true
}
