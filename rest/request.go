// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bureau-foundation/switchboard/lib/validate"
)

// AuditReasonHeader carries the audit log reason of a mutating request.
const AuditReasonHeader = "X-Audit-Log-Reason"

// Request is a built, transport-neutral API request.
type Request struct {
	Method string
	// Path is relative to the client's base URL and starts with "/".
	Path string
	// Body is the JSON request body, or nil for none.
	Body []byte
	// Header holds request-specific headers. Authorization, User-Agent,
	// and Content-Type are set by the client.
	Header http.Header
}

func newRequest(method, path string) *Request {
	return &Request{Method: method, Path: path, Header: make(http.Header)}
}

// withJSON encodes body as the request body.
func (r *Request) withJSON(body any) (*Request, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("rest: failed to encode %s %s body: %w", r.Method, r.Path, err)
	}
	r.Body = encoded
	return r, nil
}

// withReason sets the audit log reason header. An empty reason sets
// nothing.
func (r *Request) withReason(reason string) (*Request, error) {
	if reason == "" {
		return r, nil
	}
	if err := validate.AuditReason(reason); err != nil {
		return nil, err
	}
	r.Header.Set(AuditReasonHeader, EncodeAuditReason(reason))
	return r, nil
}

// EncodeAuditReason percent-encodes every byte of reason that is not an
// ASCII letter or digit, the form the audit reason header requires.
func EncodeAuditReason(reason string) string {
	const hex = "0123456789ABCDEF"
	var builder strings.Builder
	builder.Grow(len(reason))
	for index := 0; index < len(reason); index++ {
		b := reason[index]
		if ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9') {
			builder.WriteByte(b)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(hex[b>>4])
		builder.WriteByte(hex[b&0x0F])
	}
	return builder.String()
}
