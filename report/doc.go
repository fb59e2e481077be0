// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders a leximatch.TidiedResult for a terminal or a
// CSV file. It has no say in what the result is, only how it is shown.
package report
