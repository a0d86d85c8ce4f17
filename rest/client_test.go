// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/switchboard/lib/clock"
	"github.com/bureau-foundation/switchboard/lib/secret"
	"github.com/bureau-foundation/switchboard/lib/version"
)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testToken creates a secret.Token for testing. The token is closed
// when the test completes.
func testToken(t *testing.T, value string) *secret.Token {
	t.Helper()
	token, err := secret.NewToken([]byte(value))
	if err != nil {
		t.Fatalf("creating test token: %v", err)
	}
	t.Cleanup(func() { token.Close() })
	return token
}

// testClient returns a Client pointed at server with a fake clock at
// testEpoch.
func testClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   testToken(t, "test-token"),
		Clock:   clock.Fake(testEpoch),
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient(ClientConfig{Token: testToken(t, "abc")})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
		}
		if client.userAgent != version.UserAgent() {
			t.Errorf("userAgent = %q", client.userAgent)
		}
		if client.commands == nil {
			t.Error("command cache not created by default")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if _, err := NewClient(ClientConfig{}); err == nil {
			t.Fatal("expected error for missing token")
		}
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{BaseURL: "://invalid", Token: testToken(t, "abc")})
		if err == nil {
			t.Fatal("expected error for invalid URL")
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "http://localhost:8080/api/", Token: testToken(t, "abc")})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.baseURL != "http://localhost:8080/api" {
			t.Errorf("baseURL = %q", client.baseURL)
		}
	})

	t.Run("cache disabled", func(t *testing.T) {
		client, err := NewClient(ClientConfig{Token: testToken(t, "abc"), CommandCacheSize: -1})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.commands != nil {
			t.Error("command cache created despite negative size")
		}
	})
}

func TestDoSendsHeaders(t *testing.T) {
	var gotAuth, gotAgent, gotType, gotReason, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotAuth = request.Header.Get("Authorization")
		gotAgent = request.Header.Get("User-Agent")
		gotType = request.Header.Get("Content-Type")
		gotReason = request.Header.Get(AuditReasonHeader)
		body, _ := io.ReadAll(request.Body)
		gotBody = string(body)
		writer.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := testClient(t, server)
	request := newRequest(http.MethodPost, "/things")
	request.Body = []byte(`{"a":1}`)
	request, err := request.withReason("spam cleanup")
	if err != nil {
		t.Fatalf("withReason: %v", err)
	}

	body, err := client.Do(context.Background(), request)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
	if gotAuth != "Bot test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bot test-token")
	}
	if gotAgent != version.UserAgent() {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if gotReason != "spam%20cleanup" {
		t.Errorf("%s = %q, want %q", AuditReasonHeader, gotReason, "spam%20cleanup")
	}
	if gotBody != `{"a":1}` {
		t.Errorf("request body = %q", gotBody)
	}
}

func TestDoWithoutBodyOmitsContentType(t *testing.T) {
	var gotType string
	var gotLength int64
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotType = request.Header.Get("Content-Type")
		gotLength = request.ContentLength
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := testClient(t, server)
	body, err := client.Do(context.Background(), newRequest(http.MethodPost, "/channels/1/typing"))
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, want empty", body)
	}
	if gotType != "" {
		t.Errorf("Content-Type = %q, want empty", gotType)
	}
	if gotLength != 0 {
		t.Errorf("ContentLength = %d, want 0", gotLength)
	}
}

func TestDoErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantAPI    bool
		wantCode   int
		wantSubstr string
	}{
		{
			name:     "service error",
			status:   http.StatusNotFound,
			body:     `{"code":10007,"message":"Unknown Member"}`,
			wantAPI:  true,
			wantCode: ErrCodeUnknownMember,
		},
		{
			name:     "form error with details",
			status:   http.StatusBadRequest,
			body:     `{"code":50035,"message":"Invalid Form Body","errors":{"nick":{"_errors":[]}}}`,
			wantAPI:  true,
			wantCode: ErrCodeInvalidFormBody,
		},
		{
			name:       "non-JSON body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantSubstr: "unexpected 502 response",
		},
		{
			name:       "JSON without error fields",
			status:     http.StatusInternalServerError,
			body:       `{}`,
			wantSubstr: "unexpected 500 response",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				writer.Write([]byte(test.body))
			}))
			defer server.Close()

			client := testClient(t, server)
			_, err := client.Do(context.Background(), newRequest(http.MethodGet, "/x"))
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if test.wantAPI {
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %T: %v", err, err)
				}
				if apiErr.Code != test.wantCode {
					t.Errorf("Code = %d, want %d", apiErr.Code, test.wantCode)
				}
				if apiErr.StatusCode != test.status {
					t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, test.status)
				}
				if !IsAPIError(err, test.wantCode) {
					t.Errorf("IsAPIError(err, %d) = false", test.wantCode)
				}
				return
			}
			if errors.As(err, &apiErr) {
				t.Fatalf("unexpected *APIError: %v", err)
			}
			if !strings.Contains(err.Error(), test.wantSubstr) {
				t.Errorf("error %q does not contain %q", err, test.wantSubstr)
			}
		})
	}
}

func TestDoNilRequest(t *testing.T) {
	client, err := NewClient(ClientConfig{Token: testToken(t, "abc")})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.Do(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestDoContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(t, server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Do(ctx, newRequest(http.MethodGet, "/x"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do error = %v, want context.Canceled", err)
	}
}

func TestIsAPIErrorWrapped(t *testing.T) {
	t.Parallel()

	base := &APIError{Code: ErrCodeMissingPermissions, Message: "Missing Permissions", StatusCode: 403}
	wrapped := errors.Join(errors.New("context"), base)
	if !IsAPIError(wrapped, ErrCodeMissingPermissions) {
		t.Error("IsAPIError did not see through errors.Join")
	}
	if IsAPIError(wrapped, ErrCodeUnknownRole) {
		t.Error("IsAPIError matched the wrong code")
	}
	if IsAPIError(errors.New("plain"), ErrCodeGeneral) {
		t.Error("IsAPIError matched a plain error")
	}
	if got := base.Error(); got != "rest: 50013 (403): Missing Permissions" {
		t.Errorf("Error() = %q", got)
	}
}

func TestEncodeAuditReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason string
		want   string
	}{
		{"plain", "plain"},
		{"Spam 123", "Spam%20123"},
		{"a/b?c=d&e", "a%2Fb%3Fc%3Dd%26e"},
		{"café", "caf%C3%A9"},
		{"under_score-dash.dot~", "under%5Fscore%2Ddash%2Edot%7E"},
	}
	for _, test := range tests {
		if got := EncodeAuditReason(test.reason); got != test.want {
			t.Errorf("EncodeAuditReason(%q) = %q, want %q", test.reason, got, test.want)
		}
	}
}

func TestWithReasonRejectsLong(t *testing.T) {
	t.Parallel()

	_, err := newRequest(http.MethodPatch, "/x").withReason(strings.Repeat("r", 513))
	if err == nil {
		t.Fatal("expected error for 513-character reason")
	}
}
