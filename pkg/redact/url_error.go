// Copyright (c) 2025, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package redact strips sensitive query parameters out of errors before
// they reach a log line, so an OMDB API key (or similar) never ends up in
// stderr or a rotated log file.
package redact

import (
	"errors"
	"net/url"
	"strings"
)

var sensitiveParams = []string{"apikey", "api_key", "token", "passkey", "password"}

// URLError redacts sensitive query parameters from the URL carried by a
// *url.Error anywhere in err's chain, returning the redacted *url.Error.
// Errors with no *url.Error in their chain are returned unchanged.
func URLError(err error) error {
	if err == nil {
		return nil
	}

	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	redacted := *urlErr
	redacted.URL = redactQuery(urlErr.URL)
	return &redacted
}

func redactQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	changed := false
	for key := range q {
		for _, sensitive := range sensitiveParams {
			if strings.EqualFold(key, sensitive) {
				q.Set(key, "REDACTED")
				changed = true
				break
			}
		}
	}
	if !changed {
		return raw
	}

	u.RawQuery = q.Encode()
	return u.String()
}
