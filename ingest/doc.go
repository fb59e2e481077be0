// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ingest parses and validates the tabular preference sheet
// format consumed by leximatch: a header row of position names, a
// slot-count row, and one row per person giving a rank, a fixed-rank
// marker, or a forbidden marker per position.
package ingest
