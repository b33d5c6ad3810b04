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

// Package voice plays word pronunciation clips through an external media
// player found on the system path.
package voice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
)

const clipURL = "https://dict.youdao.com/dictvoice?type=2&audio="

// ErrPlayerMissing indicates that no supported media player was found on
// the system path.
var ErrPlayerMissing = errors.New("voice: no supported media player found")

// URL returns the pronunciation clip URL for word.
func URL(word string) string {
	return clipURL + url.QueryEscape(word)
}

// FindPlayer returns the path of the first supported media player found on
// the system path.
func FindPlayer() (string, error) {
	for _, name := range playerNames() {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrPlayerMissing
}

// Play plays the pronunciation of word, blocking until the player exits.
// It fails with ErrPlayerMissing when no player is installed.
func Play(ctx context.Context, word string) error {
	player, err := FindPlayer()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, player, URL(word))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("voice: %s: %w", filepath.Base(player), err)
	}
	return nil
}
