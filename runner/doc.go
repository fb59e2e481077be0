// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner drives a leximatch.State to completion, batching
// step() calls, honoring context cancellation between batches, and
// logging progress.
package runner
