// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "leximatchctl",
		Usage: "Compute leximin-optimal assignments of people to positions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML run-configuration file",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "steps to take between progress reports",
			},
			&cli.Int64Flag{
				Name:  "step-limit",
				Usage: "give up after this many steps (0 = unbounded)",
			},
			&cli.DurationFlag{
				Name:  "deadline",
				Usage: "give up after this much wall-clock time (0 = unbounded)",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "table",
				Usage: "output format: table or csv",
			},
		},
		Commands: []*cli.Command{
			solveCmd,
			benchCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
