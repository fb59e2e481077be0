// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"strings"
	"testing"

	"github.com/jefelino/leximatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheet_Basic(t *testing.T) {
	csv := "Courses,A,B\n" +
		"Number of slots,1,1\n" +
		"P1,1,2\n" +
		"P2,*2,1\n"

	sheet, err := ParseSheet(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []leximatch.Position{"A", "B"}, sheet.Positions)
	assert.Equal(t, map[leximatch.Position]int{"A": 1, "B": 1}, sheet.Slots)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, leximatch.Person("P1"), sheet.Rows[0].Person)
	assert.Equal(t, Cell{Rank: 1}, sheet.Rows[0].Cells["A"])
	assert.Equal(t, Cell{Rank: 2}, sheet.Rows[0].Cells["B"])

	assert.Equal(t, Cell{Rank: 2, Fixed: true}, sheet.Rows[1].Cells["A"])
}

func TestParseSheet_ForbiddenCellProducesNoEntry(t *testing.T) {
	csv := "Courses,A,B\n" +
		"Number of slots,1,1\n" +
		"P1,-,1\n"

	sheet, err := ParseSheet(strings.NewReader(csv))
	require.NoError(t, err)

	_, ok := sheet.Rows[0].Cells["A"]
	assert.False(t, ok, "forbidden cell should produce no preference entry")
	assert.Equal(t, Cell{Rank: 1}, sheet.Rows[0].Cells["B"])
}

func TestParseSheet_BlankRowsSkipped(t *testing.T) {
	csv := "Courses,A\n" +
		"Number of slots,1\n" +
		"\n" +
		"P1,1\n"

	sheet, err := ParseSheet(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, sheet.Rows, 1)
}

func TestParseSheet_RejectsMissingHeader(t *testing.T) {
	_, err := ParseSheet(strings.NewReader("Nope,A\nNumber of slots,1\n"))
	assert.Error(t, err)
}

func TestParseSheet_RejectsBadRankToken(t *testing.T) {
	csv := "Courses,A\n" +
		"Number of slots,1\n" +
		"P1,abc\n"
	_, err := ParseSheet(strings.NewReader(csv))
	assert.Error(t, err)
}
