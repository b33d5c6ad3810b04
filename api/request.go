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

// Package api builds dictionary lookup requests and describes the wire
// payload they return.
package api

import (
	"fmt"
	"net/http"
	"net/url"

	"yodict/sign"
)

const (
	v3BaseURL     = "https://openapi.youdao.com/api"
	legacyBaseURL = "https://fanyi.youdao.com/openapi.do"

	formContentType = "application/x-www-form-urlencoded"
)

// Mode is the API variant used for lookups.
type Mode int

const (
	// ModeLegacy is the unauthenticated GET variant.
	ModeLegacy Mode = iota

	// ModeV3 is the authenticated POST variant. It is active only when
	// both an application key and a secret key are configured.
	ModeV3
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeV3 {
		return "v3"
	}
	return "legacy"
}

// ModeFor returns the request mode selected by the given credentials.
func ModeFor(appKey, secret string) Mode {
	if appKey != "" && secret != "" {
		return ModeV3
	}
	return ModeLegacy
}

// Request is a fully formed HTTP request for a dictionary lookup.
type Request struct {
	Method      string
	URL         string
	ContentType string
	Body        string
}

// Params are the inputs to request building. Salt and Curtime participate
// in the v3 signature and are ignored in legacy mode.
type Params struct {
	Word    string
	From    string
	To      string
	AppKey  string
	Secret  string
	Salt    string
	Curtime string

	// BaseURL overrides the endpoint. Used in tests.
	BaseURL string
}

// Build formats a lookup request for p.Word in the given mode.
func Build(mode Mode, p Params) Request {
	base := p.BaseURL

	if mode == ModeV3 {
		if base == "" {
			base = v3BaseURL
		}
		form := url.Values{}
		form.Set("q", p.Word)
		form.Set("from", p.From)
		form.Set("to", p.To)
		form.Set("appKey", p.AppKey)
		form.Set("salt", p.Salt)
		form.Set("sign", sign.Sign(p.Word, p.AppKey, p.Secret, p.Salt, p.Curtime))
		form.Set("signType", "v3")
		form.Set("curtime", p.Curtime)
		return Request{
			Method:      http.MethodPost,
			URL:         base,
			ContentType: formContentType,
			Body:        form.Encode(),
		}
	}

	if base == "" {
		base = legacyBaseURL
	}
	return Request{
		Method: http.MethodGet,
		URL: fmt.Sprintf(
			"%s?keyfrom=YouDaoCV&key=659600698&type=data&doctype=json&version=1.1&q=%s",
			base, url.QueryEscape(p.Word)),
	}
}
