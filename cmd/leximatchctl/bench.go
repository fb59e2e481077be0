// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jefelino/leximatch"
	"github.com/jefelino/leximatch/runner"
)

var benchCmd = &cli.Command{
	Name:    "bench",
	Usage:   "Compare the exact leximin solver against the superseded greedy matcher",
	Aliases: []string{"b"},
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
		return doBench(ctx, sheetFile)
	},
}

func doBench(ctx *cli.Context, sheetFile string) error {
	input, err := loadInput(sheetFile)
	if err != nil {
		return err
	}

	cfg, err := runner.LoadConfig(ctx.String("config"))
	if err != nil {
		return err
	}

	exact, err := runner.Run(ctx.Context, cfg, leximatch.NewState(input), nil)
	if err != nil {
		return fmt.Errorf("exact solver: %w", err)
	}

	greedy := leximatch.GreedyAssigner{RankSensitivity: 1}
	greedyAssignment, perfect := greedy.Assign(input)
	greedyDistribution := leximatch.Count(ranksOf(greedyAssignment))

	fmt.Println("exact solver distribution: ", exact.Distribution)
	fmt.Println("greedy matcher distribution:", greedyDistribution, "(perfect:", perfect, ")")
	return nil
}

func ranksOf(a leximatch.Assignment) []leximatch.Rank {
	ranks := make([]leximatch.Rank, 0, len(a))
	for _, p := range a {
		ranks = append(ranks, p.Rank)
	}
	return ranks
}
