// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rest is a small client for the chat service's REST API,
// covering the endpoints switchboard manages: application commands,
// guild members, roles, welcome screens, and channel follow and typing
// triggers.
//
// Each endpoint has a request type with three steps that can be used
// separately:
//
//   - Validate checks the parameters against the service's limits
//     (see lib/validate) without touching the network.
//   - Build turns the request into a transport-neutral [Request]:
//     method, path, JSON body, and headers. Dry runs stop here.
//   - A [Client] method executes it and decodes the response.
//
// Update requests use [nullable.Field] for members that distinguish
// "leave unchanged" (omitted) from "clear" (null). An audit log reason,
// where supported, is sent percent-encoded in the X-Audit-Log-Reason
// header.
//
// Non-2xx responses are returned as [*APIError], carrying the service's
// numeric error code; use [IsAPIError] to test for a specific code.
// The client does not retry and does not implement rate limiting.
//
// The client keeps an LRU cache of command lists per [command.Scope],
// filled by reads and by bulk overwrites and invalidated by creates.
package rest
