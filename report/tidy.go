// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"sort"

	"github.com/jefelino/leximatch"
)

// SortedPeople returns the people in an assignment in a deterministic
// order, so table rows and CSV lines don't shuffle between runs of
// Go's randomized map iteration.
func SortedPeople(a leximatch.Assignment) []leximatch.Person {
	people := make([]leximatch.Person, 0, len(a))
	for p := range a {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i] < people[j] })
	return people
}
