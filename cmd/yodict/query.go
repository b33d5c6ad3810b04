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
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"yodict"
	"yodict/format"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Look up a word",
		ArgsUsage: "[WORD...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "source language (overrides configuration)",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "target language (overrides configuration)",
			},
			&cli.StringFlag{
				Name:  "line",
				Usage: "extract the word from `TEXT` at --col instead of arguments",
			},
			&cli.IntFlag{
				Name:  "col",
				Usage: "cursor column in runes, used with --line",
			},
			&cli.BoolFlag{
				Name:  "list-explains",
				Usage: "print the stripped explanations one per line",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := yodict.LoadConfig()
			if err != nil {
				return err
			}
			if from := c.String("from"); from != "" {
				cfg.From = from
			}
			if to := c.String("to"); to != "" {
				cfg.To = to
			}

			client := yodict.New(cfg, yodict.WithLogger(newLogger()))

			word := strings.Join(c.Args().Slice(), " ")
			if line := c.String("line"); line != "" {
				word = client.WordAt(line, c.Int("col"))
			}

			payload, err := client.Query(c.Context, word)
			if errors.Is(err, yodict.ErrEmptyQuery) {
				// Nothing to look up is informational, not a failure.
				fmt.Fprintln(c.App.Writer, "nothing to look up")
				return nil
			}
			if err != nil {
				return err
			}

			if c.Bool("list-explains") {
				for _, e := range format.Explanations(payload) {
					fmt.Fprintln(c.App.Writer, format.StripTags(e))
				}
				return nil
			}

			fmt.Fprint(c.App.Writer, format.Text(payload))
			return nil
		},
	}
}
