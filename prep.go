// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leximatch

// Prepare builds the initial search space from a validated Input:
// remaining preferences and slots start as given, then every
// preference marked Fixed is applied eagerly via Assign, in the order
// it appears in input.Preferences. A fixed preference whose position
// has no remaining slot by the time it is reached is silently
// dropped — the ingestion/validation collaborator is responsible for
// warning about conflicting fixes; the solver just behaves
// deterministically given whatever order it is handed.
func Prepare(input Input) Space {
	prefs := make(map[ppKey]Rank, len(input.Preferences))
	for _, p := range input.Preferences {
		prefs[ppKey{Person: p.Person, Position: p.Position}] = p.Rank
	}

	slots := make(map[Position]int, len(input.Slots))
	for pos, n := range input.Slots {
		if n > 0 {
			slots[pos] = n
		}
	}

	space := Space{Prefs: prefs, Slots: slots, Partial: make(Assignment)}

	for _, p := range input.Preferences {
		if !p.Fixed {
			continue
		}
		if _, alreadyPlaced := space.Partial[p.Person]; alreadyPlaced {
			continue
		}
		if space.Slots[p.Position] <= 0 {
			continue
		}
		key := ppKey{Person: p.Person, Position: p.Position}
		if _, open := space.Prefs[key]; !open {
			continue
		}
		space = Assign(space, p.Person, p.Position, p.Rank)
	}

	return space
}
