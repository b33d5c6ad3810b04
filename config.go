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
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"yodict/api"
)

// Config is process-wide configuration for dictionary lookups. It is read
// once and treated as immutable afterwards; operations receive it by value.
type Config struct {
	// AppKey and SecretKey are the openapi credentials. Lookups use the
	// authenticated v3 variant only when both are set.
	AppKey    string `yaml:"app_key"    env:"YODICT_APP_KEY"`
	SecretKey string `yaml:"secret_key" env:"YODICT_SECRET_KEY"`

	// From and To are the language pair.
	From string `yaml:"from" env:"YODICT_FROM" env-default:"auto"`
	To   string `yaml:"to"   env:"YODICT_TO"   env-default:"auto"`

	// HistoryFile is the path of the append-only query log. Empty disables
	// history.
	HistoryFile string `yaml:"history_file" env:"YODICT_HISTORY_FILE"`

	// SegmentChinese selects word-level instead of character-level
	// granularity when extracting Han text under a cursor.
	SegmentChinese bool `yaml:"segment_chinese" env:"YODICT_SEGMENT_CHINESE" env-default:"false"`
}

// LoadConfig reads configuration from the YAML file named by the
// YODICT_CONFIG environment variable and from the environment, environment
// values winning. Without a config file, the environment and defaults are
// used alone.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("YODICT_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: reading environment: %w", err)
	}
	return cfg, nil
}

// Mode returns the API variant the configuration selects.
func (c Config) Mode() api.Mode {
	return api.ModeFor(c.AppKey, c.SecretKey)
}
