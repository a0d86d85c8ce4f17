// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil bounds HTTP response reads for the REST client and
// shortens unexpected bodies for error messages.
//
// Response bodies are read up to MaxResponseSize bytes. API payloads
// are JSON documents orders of magnitude smaller; the bound only stops
// a broken or hostile server from exhausting memory.
package netutil
