// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leximatch

// frame is one link of the search-position continuation: the node to
// examine next, and what remains to be tried afterward. A nil *frame
// stands for Finish; a non-nil one is Step(space, next) in the
// specification's terms. Keeping it as a heap-allocated linked list
// (rather than native recursion) lets the continuation survive being
// handed back to a host between calls to Step.
type frame struct {
	space Space
	next  *frame
}

// State is the solver's resumable search position: the continuation
// stack of nodes yet to examine, plus the best result accumulated so
// far. State is an immutable value; Step returns a new one.
type State struct {
	top  *frame
	best Result
}

// NewState builds the initial search state for input: the prepared
// starting space (§ input preparation) with an empty best result.
func NewState(input Input) State {
	return State{top: &frame{space: Prepare(input)}}
}

// Finished reports whether the search has exhausted the tree. Once
// true, Result is final and Step is a no-op.
func (s State) Finished() bool {
	return s.top == nil
}

// Result returns the best result accumulated so far. It is present
// only once at least one complete assignment has been found, and it
// is final once Finished reports true.
func (s State) Result() Result {
	return s.best
}

// Step advances the search by one branch-or-backtrack unit of work and
// returns the resulting state. Calling Step on a finished state is a
// no-op. A host typically calls Step some fixed number of times per
// batch and yields to its own scheduler in between; no single call
// blocks or performs I/O.
func (s State) Step() State {
	if s.top == nil {
		return s
	}
	space, next := s.top.space, s.top.next

	if space.Complete() {
		return State{top: next, best: merge(s.best, distributionOf(space.Partial), space.Partial)}
	}

	a := analyze(space)
	cand, ok := a.selectBranch()
	if !ok {
		// Infeasible: some position needs more candidates than remain.
		return State{top: next, best: s.best}
	}

	b, ok := bound(space, a)
	if !ok || (s.best.Present && Compare(b, s.best.Distribution) == GT) {
		return State{top: next, best: s.best}
	}

	assigned := Assign(space, cand.Person, cand.Position, cand.Rank)
	dropped := Drop(space, cand.Person, cand.Position)
	return State{
		top:  &frame{space: assigned, next: &frame{space: dropped, next: next}},
		best: s.best,
	}
}
