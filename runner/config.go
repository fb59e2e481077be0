// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultBatchSize is how many leximatch.State.Step calls Run performs
// between progress callbacks and context-cancellation checks, matching
// the "~1,000 steps per frame" guidance for the search's suspension
// points.
const DefaultBatchSize = 1000

// Config controls a single Run invocation.
type Config struct {
	// BatchSize is how many steps run between progress reports and
	// cancellation checks. Zero means DefaultBatchSize.
	BatchSize int `toml:"batch_size"`

	// StepLimit caps the total number of steps taken before Run gives
	// up and returns the best result found so far. Zero means
	// unbounded.
	StepLimit int64 `toml:"step_limit"`

	// Deadline bounds wall-clock time spent in Run. Zero means no
	// deadline beyond ctx's own.
	Deadline time.Duration `toml:"deadline"`
}

// WithDefaults returns a copy of c with zero-valued fields replaced by
// their defaults.
func (c Config) WithDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// LoadConfig reads a TOML-encoded Config from path. A missing file is
// not an error: it returns the zero Config, which WithDefaults fills
// in.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("runner: decoding config %q: %w", path, err)
	}
	return cfg, nil
}
