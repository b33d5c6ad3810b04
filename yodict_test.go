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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yodict/api"
	"yodict/sign"
)

func newTestClient(cfg Config, endpoint string) *Client {
	c := New(cfg, WithEndpoint(endpoint))
	c.now = func() time.Time { return time.Unix(1620000000, 0) }
	c.salt = func() string { return "1234" }
	return c
}

func TestClient_queryV3(t *testing.T) {
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": "hello",
			"errorCode": 0,
			"translation": ["你好"],
			"basic": {"phonetic": "həˈləʊ", "explains": ["int. 喂"]}
		}`))
	}))
	defer server.Close()

	client := newTestClient(Config{
		AppKey:    "ak",
		SecretKey: "sk",
		From:      "auto",
		To:        "zh-CHS",
	}, server.URL)
	require.Equal(t, api.ModeV3, client.Mode())

	payload, err := client.Query(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "hello", payload.Query)
	assert.Equal(t, []string{"你好"}, payload.Translation)
	require.True(t, payload.HasBasic())
	assert.Equal(t, []string{"int. 喂"}, payload.Basic.Explains)

	assert.Equal(t, []string{"hello"}, gotForm["q"])
	assert.Equal(t, []string{"v3"}, gotForm["signType"])
	assert.Equal(t, []string{"1234"}, gotForm["salt"])
	assert.Equal(t, []string{"1620000000"}, gotForm["curtime"])
	assert.Equal(t,
		[]string{sign.Sign("hello", "ak", "sk", "1234", "1620000000")},
		gotForm["sign"])
}

func TestClient_queryLegacy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "hello world", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("doctype"))

		_, _ = w.Write([]byte(`{"query": "hello world", "translation": ["你好世界"]}`))
	}))
	defer server.Close()

	client := newTestClient(Config{From: "auto", To: "auto"}, server.URL)
	require.Equal(t, api.ModeLegacy, client.Mode())

	// Folding reduces a multi-line selection to a single query.
	payload, err := client.Query(context.Background(), " hello\nworld ")
	require.NoError(t, err)
	assert.Equal(t, []string{"你好世界"}, payload.Translation)
	assert.False(t, payload.HasBasic())
}

func TestClient_queryConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(Config{}, server.URL)

	payload, err := client.Query(context.Background(), "hello")
	require.ErrorIs(t, err, ErrConnection)
	assert.Nil(t, payload)
}

func TestClient_queryEmpty(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		requests++
	}))
	defer server.Close()

	histPath := filepath.Join(t.TempDir(), "history.txt")
	client := newTestClient(Config{HistoryFile: histPath}, server.URL)

	_, err := client.Query(context.Background(), "  \n\t ")
	require.ErrorIs(t, err, ErrEmptyQuery)

	// The lookup aborts before any network call or history write.
	assert.Zero(t, requests)
	_, statErr := os.Stat(histPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestClient_queryAppendsHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"query": "hello", "translation": ["你好"]}`))
	}))
	defer server.Close()

	histPath := filepath.Join(t.TempDir(), "history.txt")
	client := newTestClient(Config{HistoryFile: histPath}, server.URL)

	_, err := client.Query(context.Background(), "hello")
	require.NoError(t, err)

	raw, err := os.ReadFile(histPath)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(raw))
}

func TestClient_queryAsync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"query": "hello", "translation": ["你好"]}`))
	}))
	defer server.Close()

	client := newTestClient(Config{}, server.URL)

	ch := client.QueryAsync(context.Background(), "hello")

	result, ok := <-ch
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, "hello", result.Payload.Query)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after one result")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("YODICT_CONFIG", "")
	t.Setenv("YODICT_APP_KEY", "ak")
	t.Setenv("YODICT_SECRET_KEY", "sk")
	t.Setenv("YODICT_TO", "zh-CHS")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ak", cfg.AppKey)
	assert.Equal(t, "sk", cfg.SecretKey)
	assert.Equal(t, "auto", cfg.From)
	assert.Equal(t, "zh-CHS", cfg.To)
	assert.False(t, cfg.SegmentChinese)
	assert.Equal(t, api.ModeV3, cfg.Mode())
}

func TestLoadConfig_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_key: file-ak\nto: ja\n"), 0o600))

	t.Setenv("YODICT_CONFIG", path)
	t.Setenv("YODICT_APP_KEY", "env-ak")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Environment wins over the file.
	assert.Equal(t, "env-ak", cfg.AppKey)
	assert.Equal(t, "ja", cfg.To)
	assert.Equal(t, api.ModeLegacy, cfg.Mode())
}
