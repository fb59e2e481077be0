// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"fmt"
	"sort"

	"github.com/jefelino/leximatch"
)

// WarningCode classifies a Warning so callers can filter or format by
// kind without parsing Message.
type WarningCode string

const (
	WarnPeopleSlotMismatch  WarningCode = "people_slot_mismatch"
	WarnDuplicateFixed      WarningCode = "duplicate_fixed"
	WarnFixedExceedsSlots   WarningCode = "fixed_exceeds_slots"
	WarnRankOutOfRange      WarningCode = "rank_out_of_range"
	WarnRankRenormalized    WarningCode = "rank_renormalized"
	WarnAllPositionsBlocked WarningCode = "all_positions_blocked"
)

// Warning is a non-fatal finding raised while validating a Sheet. The
// core solver is never told about these; Validate has already acted
// on them (dropped, clamped, or renormalized) by the time it returns.
type Warning struct {
	Code     WarningCode
	Person   leximatch.Person
	Position leximatch.Position
	Message  string
}

func (w Warning) String() string {
	return w.Message
}

// Validate turns a parsed Sheet into a leximatch.Input, applying the
// §6 validation contract and collecting a Warning for every
// non-fatal anomaly it corrects along the way.
func Validate(sheet *Sheet) (leximatch.Input, []Warning) {
	var warnings []Warning

	total := 0
	for _, n := range sheet.Slots {
		total += n
	}
	if len(sheet.Rows) != total {
		warnings = append(warnings, Warning{
			Code: WarnPeopleSlotMismatch,
			Message: fmt.Sprintf("%d people but %d slots across %d positions",
				len(sheet.Rows), total, len(sheet.Positions)),
		})
	}

	preferences := make([]leximatch.Preference, 0, len(sheet.Rows)*len(sheet.Positions))
	fixedCount := make(map[leximatch.Position]int, len(sheet.Positions))

	for _, row := range sheet.Rows {
		row, dupWarnings := dedupeFixed(row)
		warnings = append(warnings, dupWarnings...)

		if len(row.Cells) == 0 {
			warnings = append(warnings, Warning{
				Code:    WarnAllPositionsBlocked,
				Person:  row.Person,
				Message: fmt.Sprintf("person %q has no eligible position (all forbidden or missing)", row.Person),
			})
			continue
		}

		row, rangeWarnings := clampOutOfRange(row, leximatch.Rank(len(sheet.Positions)))
		warnings = append(warnings, rangeWarnings...)

		row, renormWarning := renormalizeDensity(row)
		if renormWarning != nil {
			warnings = append(warnings, *renormWarning)
		}

		for pos, cell := range row.Cells {
			preferences = append(preferences, leximatch.Preference{
				Person:   row.Person,
				Position: pos,
				Rank:     cell.Rank,
				Fixed:    cell.Fixed,
			})
			if cell.Fixed {
				fixedCount[pos]++
			}
		}
	}

	for _, pos := range sheet.Positions {
		if n := fixedCount[pos]; n > sheet.Slots[pos] {
			warnings = append(warnings, Warning{
				Code:     WarnFixedExceedsSlots,
				Position: pos,
				Message: fmt.Sprintf("position %q has %d fixed assignments but only %d slots; later ones will be dropped",
					pos, n, sheet.Slots[pos]),
			})
		}
	}

	sortPreferences(preferences)

	return leximatch.Input{Slots: sheet.Slots, Preferences: preferences}, warnings
}

// sortPreferences imposes the deterministic (person, position) order
// the core's fixed-application and tie-breaking logic depends on.
func sortPreferences(prefs []leximatch.Preference) {
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].Person != prefs[j].Person {
			return prefs[i].Person < prefs[j].Person
		}
		return prefs[i].Position < prefs[j].Position
	})
}

func dedupeFixed(row Row) (Row, []Warning) {
	var fixedAt []leximatch.Position
	for pos, cell := range row.Cells {
		if cell.Fixed {
			fixedAt = append(fixedAt, pos)
		}
	}
	if len(fixedAt) <= 1 {
		return row, nil
	}
	sort.Slice(fixedAt, func(i, j int) bool { return fixedAt[i] < fixedAt[j] })

	kept := fixedAt[0]
	cells := make(map[leximatch.Position]Cell, len(row.Cells))
	for pos, cell := range row.Cells {
		cells[pos] = cell
	}
	var warnings []Warning
	for _, pos := range fixedAt[1:] {
		cell := cells[pos]
		cell.Fixed = false
		cells[pos] = cell
		warnings = append(warnings, Warning{
			Code:    WarnDuplicateFixed,
			Person:  row.Person,
			Message: fmt.Sprintf("person %q had multiple fixed entries; kept %q, demoted %q to a ranked preference", row.Person, kept, pos),
		})
	}
	return Row{Person: row.Person, Cells: cells}, warnings
}

func clampOutOfRange(row Row, positionCount leximatch.Rank) (Row, []Warning) {
	var warnings []Warning
	cells := row.Cells
	for pos, cell := range cells {
		if cell.Rank >= 1 && cell.Rank <= positionCount {
			continue
		}
		warnings = append(warnings, Warning{
			Code:     WarnRankOutOfRange,
			Person:   row.Person,
			Position: pos,
			Message:  fmt.Sprintf("person %q ranked %q at %d, outside [1,%d]; clamped to last place", row.Person, pos, cell.Rank, positionCount),
		})
		cell.Rank = positionCount
		cells[pos] = cell
	}
	return Row{Person: row.Person, Cells: cells}, warnings
}

// renormalizeDensity checks "for each n >= 1, at least n of the
// person's listed ranks are <= n"; when it fails, every rank is
// replaced by (count of strictly smaller listed ranks) + 1, which
// restores the property while preserving relative order and ties.
func renormalizeDensity(row Row) (Row, *Warning) {
	ranks := make([]leximatch.Rank, 0, len(row.Cells))
	for _, cell := range row.Cells {
		ranks = append(ranks, cell.Rank)
	}
	if densityHolds(ranks) {
		return row, nil
	}

	cells := make(map[leximatch.Position]Cell, len(row.Cells))
	for pos, cell := range row.Cells {
		smaller := 0
		for _, r := range ranks {
			if r < cell.Rank {
				smaller++
			}
		}
		cell.Rank = leximatch.Rank(smaller + 1)
		cells[pos] = cell
	}
	return Row{Person: row.Person, Cells: cells}, &Warning{
		Code:    WarnRankRenormalized,
		Person:  row.Person,
		Message: fmt.Sprintf("person %q's ranks were not dense; renormalized", row.Person),
	}
}

func densityHolds(ranks []leximatch.Rank) bool {
	var max leximatch.Rank
	for _, r := range ranks {
		if r > max {
			max = r
		}
	}
	for n := leximatch.Rank(1); n <= max; n++ {
		count := 0
		for _, r := range ranks {
			if r <= n {
				count++
			}
		}
		if leximatch.Rank(count) < n {
			return false
		}
	}
	return true
}
