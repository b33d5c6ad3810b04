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

	"yodict/voice"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Play a word's pronunciation",
		ArgsUsage: "[WORD...]",
		Action: func(c *cli.Context) error {
			word := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if word == "" {
				fmt.Fprintln(c.App.Writer, "nothing to play")
				return nil
			}

			if err := voice.Play(c.Context, word); err != nil {
				if errors.Is(err, voice.ErrPlayerMissing) {
					return fmt.Errorf("%w: install one of mpv, mplayer, mpg123 or ffplay", err)
				}
				return err
			}
			return nil
		},
	}
}
