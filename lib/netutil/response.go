// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxResponseSize is the bound on API response body reads: 32 MB.
const MaxResponseSize int64 = 32 << 20

// MaxErrorExcerpt is the number of body bytes Truncate keeps.
const MaxErrorExcerpt = 512

// ReadResponse reads an API response body up to MaxResponseSize bytes.
// A body that exceeds the bound is an error rather than a silently
// truncated document.
func ReadResponse(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxResponseSize {
		return nil, fmt.Errorf("netutil: response body exceeds %d bytes", MaxResponseSize)
	}
	return data, nil
}

// Truncate returns body as a string for diagnostic messages, cut to
// MaxErrorExcerpt bytes at a rune boundary with a trailing marker when
// shortened.
func Truncate(body []byte) string {
	if len(body) <= MaxErrorExcerpt {
		return string(body)
	}
	cut := MaxErrorExcerpt
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (%d bytes total)", body[:cut], len(body))
}
