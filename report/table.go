// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jefelino/leximatch"
)

// RenderTable renders a tidied result as a fixed-width text table:
// the first (canonical) assignment, the ranks each person received,
// and, when the leximin-optimal distribution is tied, a count of the
// other assignments achieving it.
func RenderTable(t leximatch.TidiedResult) string {
	var buf strings.Builder
	if t.First == nil {
		buf.WriteString("no feasible assignment\n")
		return buf.String()
	}

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PERSON\tPOSITION\tRANK")
	for _, person := range SortedPeople(t.First) {
		p := t.First[person]
		fmt.Fprintf(w, "%s\t%s\t%d\n", person, p.Position, p.Rank)
	}
	w.Flush()

	fmt.Fprintf(&buf, "\ndistribution: %s\n", formatDistribution(t.Distribution))
	if n := len(t.Diffs); n > 0 {
		fmt.Fprintf(&buf, "%d other assignment(s) achieve the same distribution\n", n)
	}
	return buf.String()
}

func formatDistribution(d leximatch.Distribution) string {
	var ranks []leximatch.Rank
	for r := range d {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	parts := make([]string, 0, len(ranks))
	for _, r := range ranks {
		parts = append(parts, fmt.Sprintf("%d:%d", r, d.Get(r)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ExportCSV writes the canonical assignment as person,position,rank
// rows, suitable for pasting into a spreadsheet.
func ExportCSV(w io.Writer, t leximatch.TidiedResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"person", "position", "rank"}); err != nil {
		return fmt.Errorf("report: writing header: %w", err)
	}
	for _, person := range SortedPeople(t.First) {
		p := t.First[person]
		row := []string{string(person), string(p.Position), strconv.Itoa(int(p.Rank))}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: writing row for %q: %w", person, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
