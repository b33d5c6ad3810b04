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

// Package yodict implements a client for the Youdao online dictionary and
// translation service.
//
// A lookup issues a single HTTP request and returns the parsed payload.
// Two API variants exist:
//  1. The authenticated "v3" variant, active when both an application key
//     and a secret key are configured. Requests are POSTed with a SHA-256
//     signature over the salted, truncated query.
//  2. The unauthenticated legacy variant, a plain GET, used otherwise.
//
// The variant is computed once from the configuration when the client is
// created. Each lookup is independent: there is no cache, no retry and no
// shared state beyond the immutable configuration.
//
// Rendering payloads into display text lives in the format package,
// pronunciation playback in the voice package and the query log in the
// history package.
package yodict
