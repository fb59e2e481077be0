// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leximatch

import (
	"sort"
	"testing"
)

// solveToCompletion drives State.Step until Finished, bailing out with
// a test failure if that never happens within a generous step budget —
// the universal invariant is that it always does, but an infinite loop
// bug should fail the test instead of hanging the suite.
func solveToCompletion(t *testing.T, s State) State {
	t.Helper()
	for i := 0; !s.Finished(); i++ {
		if i > 1_000_000 {
			t.Fatal("search did not finish within step budget")
		}
		s = s.Step()
	}
	return s
}

func pref(p Person, c Position, r Rank, fixed bool) Preference {
	return Preference{Person: p, Position: c, Rank: r, Fixed: fixed}
}

func TestSolve_TrivialIdentity(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 1, "B": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, false), pref("P1", "B", 2, false),
			pref("P2", "A", 2, false), pref("P2", "B", 1, false),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	requireDistribution(t, res, Distribution{1: 2})
	requireUniqueAssignment(t, res, Assignment{
		"P1": {Position: "A", Rank: 1},
		"P2": {Position: "B", Rank: 1},
	})
}

func TestSolve_ForcedTieBreakByLeximin(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 1, "B": 1, "C": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, false), pref("P1", "B", 2, false), pref("P1", "C", 3, false),
			pref("P2", "A", 1, false), pref("P2", "B", 2, false), pref("P2", "C", 3, false),
			pref("P3", "A", 1, false), pref("P3", "B", 2, false), pref("P3", "C", 3, false),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	requireDistribution(t, res, Distribution{1: 1, 2: 1, 3: 1})
	if len(res.Assignments) != 6 {
		t.Fatalf("got %d tied assignments, want 6 (all permutations)", len(res.Assignments))
	}
}

func TestSolve_LeximinBeatsUtilitarian(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 1, "B": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, false), pref("P1", "B", 3, false),
			pref("P2", "A", 1, false), pref("P2", "B", 2, false),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	requireDistribution(t, res, Distribution{1: 1, 2: 1})
	requireUniqueAssignment(t, res, Assignment{
		"P1": {Position: "A", Rank: 1},
		"P2": {Position: "B", Rank: 2},
	})
}

func TestSolve_FixedAssignment(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 1, "B": 1},
		Preferences: []Preference{
			pref("P1", "A", 2, true), pref("P1", "B", 1, false),
			pref("P2", "A", 1, false), pref("P2", "B", 2, false),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	requireDistribution(t, res, Distribution{2: 2})
	requireUniqueAssignment(t, res, Assignment{
		"P1": {Position: "A", Rank: 2},
		"P2": {Position: "B", Rank: 2},
	})
}

func TestSolve_ForbiddenAssignment(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 1, "B": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, false), pref("P1", "B", 2, false),
			// P2 forbids A: no preference entry for (P2, A).
			pref("P2", "B", 1, false),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	requireDistribution(t, res, Distribution{1: 2})
	requireUniqueAssignment(t, res, Assignment{
		"P1": {Position: "A", Rank: 1},
		"P2": {Position: "B", Rank: 1},
	})
}

func TestSolve_InfeasibleFixedConflict(t *testing.T) {
	// Both P1 and P2 fixed to A's single slot. Prepare applies fixes in
	// order, so P1 wins the slot and P2's fixed preference is silently
	// dropped (no remaining slot when reached). With no other position
	// to place P2, the best result covers only P1.
	input := Input{
		Slots: map[Position]int{"A": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, true),
			pref("P2", "A", 1, true),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	if !res.Present {
		t.Fatal("expected a result covering the sole slot")
	}
	requireDistribution(t, res, Distribution{1: 1})
	for _, a := range res.Assignments {
		if _, ok := a["P1"]; !ok {
			t.Errorf("expected P1 placed in every tied assignment, got %v", a)
		}
	}
}

func TestState_FinishedIsIdempotent(t *testing.T) {
	input := Input{
		Slots:       map[Position]int{"A": 1},
		Preferences: []Preference{pref("P1", "A", 1, false)},
	}
	s := solveToCompletion(t, NewState(input))
	if !s.Finished() {
		t.Fatal("expected finished state")
	}
	again := s.Step()
	if !again.Finished() {
		t.Error("Step on a finished state should stay finished")
	}
	if again.Result().Distribution.Get(1) != s.Result().Distribution.Get(1) {
		t.Error("Step on a finished state should not change the result")
	}
}

func TestState_BestIsMonotoneNonWorsening(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 1, "B": 1, "C": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, false), pref("P1", "B", 2, false), pref("P1", "C", 3, false),
			pref("P2", "A", 2, false), pref("P2", "B", 3, false), pref("P2", "C", 1, false),
			pref("P3", "A", 3, false), pref("P3", "B", 1, false), pref("P3", "C", 2, false),
		},
	}

	s := NewState(input)
	var prevPresent bool
	var prev Distribution
	for i := 0; !s.Finished(); i++ {
		if i > 1_000_000 {
			t.Fatal("search did not finish within step budget")
		}
		s = s.Step()
		r := s.Result()
		if r.Present && prevPresent && Compare(r.Distribution, prev) == GT {
			t.Fatalf("best result worsened: %v -> %v", prev, r.Distribution)
		}
		if r.Present {
			prevPresent, prev = true, r.Distribution
		}
	}
}

func TestState_ResultIsSoundAndComplete(t *testing.T) {
	input := Input{
		Slots: map[Position]int{"A": 2, "B": 1},
		Preferences: []Preference{
			pref("P1", "A", 1, false), pref("P1", "B", 2, false),
			pref("P2", "A", 2, false), pref("P2", "B", 1, false),
			pref("P3", "A", 1, false),
		},
	}

	res := solveToCompletion(t, NewState(input)).Result()
	if !res.Present {
		t.Fatal("expected a result")
	}
	for _, a := range res.Assignments {
		requireAssignmentRespectsSlots(t, input, a)
	}
}

func requireDistribution(t *testing.T, res Result, want Distribution) {
	t.Helper()
	if !res.Present {
		t.Fatal("expected a present result")
	}
	if !distributionsEqual(res.Distribution, want) {
		t.Errorf("distribution = %v, want %v", res.Distribution, want)
	}
}

func requireUniqueAssignment(t *testing.T, res Result, want Assignment) {
	t.Helper()
	if len(res.Assignments) != 1 {
		t.Fatalf("got %d tied assignments, want 1", len(res.Assignments))
	}
	got := res.Assignments[0]
	if len(got) != len(want) {
		t.Fatalf("assignment = %v, want %v", got, want)
	}
	for person, placement := range want {
		if got[person] != placement {
			t.Errorf("assignment[%s] = %v, want %v", person, got[person], placement)
		}
	}
}

func requireAssignmentRespectsSlots(t *testing.T, input Input, a Assignment) {
	t.Helper()
	counts := map[Position]int{}
	for _, p := range a {
		counts[p.Position]++
	}
	positions := make([]Position, 0, len(input.Slots))
	for pos := range input.Slots {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })
	for _, pos := range positions {
		if counts[pos] != input.Slots[pos] {
			t.Errorf("position %s filled %d of %d slots in %v", pos, counts[pos], input.Slots[pos], a)
		}
	}
}
