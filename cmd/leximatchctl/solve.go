// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/jefelino/leximatch"
	"github.com/jefelino/leximatch/ingest"
	"github.com/jefelino/leximatch/report"
	"github.com/jefelino/leximatch/runner"
)

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Ingest a preference sheet and print the leximin-optimal assignment",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "sheet",
			Required: true,
			Usage:    "path to the preference sheet CSV",
		},
	},
	Action: func(ctx *cli.Context) error {
		sheetFile := ctx.String("sheet")
		if sheetFile == "" {
			return errors.New("invalid sheet")
		}
		return doSolve(ctx, sheetFile)
	},
}

func loadInput(sheetFile string) (leximatch.Input, error) {
	f, err := os.Open(sheetFile)
	if err != nil {
		return leximatch.Input{}, fmt.Errorf("opening sheet file: %w", err)
	}
	defer f.Close()

	sheet, err := ingest.ParseSheet(f)
	if err != nil {
		return leximatch.Input{}, fmt.Errorf("parsing sheet: %w", err)
	}

	input, warnings := ingest.Validate(sheet)
	for _, w := range warnings {
		log.Default().Warn(w.Message, "code", w.Code, "person", w.Person, "position", w.Position)
	}
	return input, nil
}

func doSolve(ctx *cli.Context, sheetFile string) error {
	input, err := loadInput(sheetFile)
	if err != nil {
		return err
	}

	cfg, err := runner.LoadConfig(ctx.String("config"))
	if err != nil {
		return err
	}
	if v := ctx.Int("batch-size"); v > 0 {
		cfg.BatchSize = v
	}
	if v := ctx.Int64("step-limit"); v > 0 {
		cfg.StepLimit = v
	}
	if v := ctx.Duration("deadline"); v > 0 {
		cfg.Deadline = v
	}

	result, err := runner.Run(ctx.Context, cfg, leximatch.NewState(input), nil)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	tidied := leximatch.Tidy(result)
	switch ctx.String("format") {
	case "csv":
		return report.ExportCSV(os.Stdout, tidied)
	default:
		fmt.Print(report.RenderTable(tidied))
		return nil
	}
}
