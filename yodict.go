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

package yodict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"yodict/api"
	"yodict/history"
	"yodict/internal/folding"
	"yodict/internal/wordat"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrConnection indicates that the dictionary service could not be
	// reached or responded with a non-200 status.
	ErrConnection = errors.New("yodict: connection error")

	// ErrEmptyQuery indicates a lookup with no resolvable word. It is
	// reported before any network traffic or history write.
	ErrEmptyQuery = errors.New("yodict: empty query")
)

// Client performs dictionary lookups. It is safe for concurrent use; every
// lookup is independent and the configuration is immutable after New.
type Client struct {
	cfg  Config
	mode api.Mode

	http *http.Client
	log  *slog.Logger
	hist *history.Log

	endpoint string

	// now and salt are injected in tests.
	now  func() time.Time
	salt func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client logger. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(u string) Option {
	return func(c *Client) { c.endpoint = u }
}

// New creates a Client for the given configuration. The request mode is
// computed here, once.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg,
		mode: cfg.Mode(),
		http: &http.Client{Timeout: defaultTimeout},
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:  time.Now,
		salt: func() string {
			return strconv.FormatInt(rand.Int64(), 10)
		},
	}
	for _, o := range opts {
		o(c)
	}
	c.hist = history.New(cfg.HistoryFile, c.log)
	return c
}

// Mode returns the API variant the client uses.
func (c *Client) Mode() api.Mode {
	return c.mode
}

// History returns the client's query log.
func (c *Client) History() *history.Log {
	return c.hist
}

// WordAt returns the word under the cursor at rune offset col in line, for
// editor integrations that pass a cursor position instead of a word. Han
// granularity follows the SegmentChinese configuration.
func (c *Client) WordAt(line string, col int) string {
	return wordat.Word(line, col, c.cfg.SegmentChinese)
}

// Query looks up word and returns the parsed payload. The word is
// whitespace-folded first; a word that folds to empty fails with
// ErrEmptyQuery. The word is appended to the history log, best-effort,
// before the request is issued.
func (c *Client) Query(ctx context.Context, word string) (*api.Payload, error) {
	word = folding.Fold(word)
	if word == "" {
		return nil, ErrEmptyQuery
	}

	c.hist.Append(word)

	req := api.Build(c.mode, api.Params{
		Word:    word,
		From:    c.cfg.From,
		To:      c.cfg.To,
		AppKey:  c.cfg.AppKey,
		Secret:  c.cfg.SecretKey,
		Salt:    c.salt(),
		Curtime: strconv.FormatInt(c.now().Unix(), 10),
		BaseURL: c.endpoint,
	})

	c.log.DebugContext(ctx, "lookup",
		slog.String("word", word),
		slog.String("mode", c.mode.String()),
	)

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("yodict: creating request: %w", err)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.ErrorContext(ctx, "lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrConnection, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrConnection, err)
	}

	var payload api.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("yodict: decoding response: %w", err)
	}

	c.log.DebugContext(ctx, "lookup done",
		slog.String("word", word),
		slog.Int("errorCode", payload.ErrorCode),
	)

	return &payload, nil
}

// AsyncResult is the outcome of an asynchronous lookup.
type AsyncResult struct {
	Payload *api.Payload
	Err     error
}

// QueryAsync starts a lookup in the background. The returned channel
// receives exactly one result and is then closed.
func (c *Client) QueryAsync(ctx context.Context, word string) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		defer close(ch)
		payload, err := c.Query(ctx, word)
		ch <- AsyncResult{Payload: payload, Err: err}
	}()
	return ch
}
