// Copyright 2025 The yodict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"yodict"
	"yodict/history"
)

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "List looked-up words",
		ArgsUsage: "[PREFIX]",
		Action: func(c *cli.Context) error {
			cfg, err := yodict.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.HistoryFile == "" {
				fmt.Fprintln(c.App.Writer, "history is not configured")
				return nil
			}

			entries, err := history.New(cfg.HistoryFile, newLogger()).Search(c.Args().First())
			if err != nil {
				return err
			}

			tbl := table.New("Word", "Lookups").WithWriter(c.App.Writer)
			for _, e := range entries {
				tbl.AddRow(e.Word, e.Count)
			}
			tbl.Print()
			return nil
		},
	}
}
