// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jefelino/leximatch"
)

const (
	coursesHeader = "Courses"
	slotsHeader   = "Number of slots"
)

// Cell is one person/position entry in a Sheet, before validation has
// decided what to do with it.
type Cell struct {
	Rank      leximatch.Rank
	Fixed     bool
	Forbidden bool
}

// Row is a single person's raw cells, keyed by position.
type Row struct {
	Person leximatch.Person
	Cells  map[leximatch.Position]Cell
}

// Sheet is the raw, unvalidated contents of a preference table: the
// ordered position list, each position's slot count, and one Row per
// person. Validate turns a Sheet into a leximatch.Input plus any
// Warnings raised along the way.
type Sheet struct {
	Positions []leximatch.Position
	Slots     map[leximatch.Position]int
	Rows      []Row
}

// ParseSheet reads the §6 tabular format: a "Courses" header row, a
// "Number of slots" row, then one row per person. Each person cell is
// either a positive integer rank, that rank prefixed by "*" to mark a
// fixed assignment, or a token starting with "-" marking the position
// forbidden (no preference entry is produced for it).
func ParseSheet(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading sheet: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("ingest: sheet has %d rows, need at least a header and a slots row", len(records))
	}

	header := records[0]
	if len(header) == 0 || strings.TrimSpace(header[0]) != coursesHeader {
		return nil, fmt.Errorf("ingest: first row must start with %q, got %q", coursesHeader, header[0])
	}
	positions := make([]leximatch.Position, 0, len(header)-1)
	for _, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		positions = append(positions, leximatch.Position(name))
	}

	slotsRow := records[1]
	if len(slotsRow) == 0 || strings.TrimSpace(slotsRow[0]) != slotsHeader {
		return nil, fmt.Errorf("ingest: second row must start with %q, got %q", slotsHeader, slotsRow[0])
	}
	slots := make(map[leximatch.Position]int, len(positions))
	for i, pos := range positions {
		col := i + 1
		if col >= len(slotsRow) {
			return nil, fmt.Errorf("ingest: slots row missing a value for position %q", pos)
		}
		n, err := strconv.Atoi(strings.TrimSpace(slotsRow[col]))
		if err != nil {
			return nil, fmt.Errorf("ingest: slots row for position %q: %w", pos, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("ingest: position %q has negative slot count %d", pos, n)
		}
		slots[pos] = n
	}

	rows := make([]Row, 0, len(records)-2)
	for _, record := range records[2:] {
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		person := leximatch.Person(strings.TrimSpace(record[0]))
		cells := make(map[leximatch.Position]Cell, len(positions))
		for i, pos := range positions {
			col := i + 1
			if col >= len(record) {
				continue
			}
			token := strings.TrimSpace(record[col])
			if token == "" {
				continue
			}
			cell, ok, err := parseCell(token)
			if err != nil {
				return nil, fmt.Errorf("ingest: person %q, position %q: %w", person, pos, err)
			}
			if ok {
				cells[pos] = cell
			}
		}
		rows = append(rows, Row{Person: person, Cells: cells})
	}

	return &Sheet{Positions: positions, Slots: slots, Rows: rows}, nil
}

func parseCell(token string) (cell Cell, ok bool, err error) {
	if strings.HasPrefix(token, "-") {
		return Cell{Forbidden: true}, false, nil
	}
	fixed := strings.HasPrefix(token, "*")
	numeric := strings.TrimPrefix(token, "*")
	n, err := strconv.Atoi(numeric)
	if err != nil {
		return Cell{}, false, fmt.Errorf("invalid rank cell %q: %w", token, err)
	}
	if n < 1 {
		return Cell{}, false, fmt.Errorf("rank %q must be >= 1", token)
	}
	return Cell{Rank: leximatch.Rank(n), Fixed: fixed}, true, nil
}
