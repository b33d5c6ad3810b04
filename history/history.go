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

// Package history records looked-up words in an append-only log file.
//
// Appends are best-effort: the lookup itself must never fail because the
// history file is unwritable, so write errors are swallowed.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"yodict/internal/folding"
	"yodict/internal/index"
)

// Entry is a distinct recorded word with its number of lookups.
type Entry struct {
	Word  string
	Count int
}

// String returns the entry's word.
func (e *Entry) String() string {
	return e.Word
}

// Log is an append-only word log backed by a file. A Log with an empty path
// records nothing and lists nothing.
type Log struct {
	path string
	log  *slog.Logger
}

// New creates a Log writing to the file at path.
func New(path string, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Log{
		path: path,
		log:  logger.With(slog.String("component", "history")),
	}
}

// Append records word, one per line. Failures are swallowed apart from a
// debug log entry.
func (l *Log) Append(word string) {
	if l.path == "" || word == "" {
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.log.Debug("append skipped", slog.String("error", err.Error()))
		return
	}
	defer f.Close()

	if _, err := f.WriteString(word + "\n"); err != nil {
		l.log.Debug("append failed", slog.String("error", err.Error()))
	}
}

// Entries returns the distinct recorded words with lookup counts, sorted by
// word. A missing history file is an empty history, not an error.
func (l *Log) Entries() ([]*Entry, error) {
	ix, err := l.index()
	if err != nil {
		return nil, err
	}
	return ix.All(), nil
}

// Search returns recorded entries whose word starts with prefix, sorted by
// word. An empty prefix returns everything.
func (l *Log) Search(prefix string) ([]*Entry, error) {
	ix, err := l.index()
	if err != nil {
		return nil, err
	}
	return ix.Prefix(prefix), nil
}

func (l *Log) index() (*index.Index[*Entry], error) {
	counts := map[string]int{}

	if l.path != "" {
		f, err := os.Open(l.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return index.New[*Entry](nil), nil
			}
			return nil, fmt.Errorf("history: opening %q: %w", l.path, err)
		}
		defer f.Close()

		s := bufio.NewScanner(f)
		for s.Scan() {
			word := folding.Fold(s.Text())
			if word == "" {
				continue
			}
			counts[word]++
		}
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("history: reading %q: %w", l.path, err)
		}
	}

	entries := make([]*Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, &Entry{Word: word, Count: count})
	}
	return index.New(entries), nil
}
