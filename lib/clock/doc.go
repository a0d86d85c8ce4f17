// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock supplies the current time to code whose behavior
// depends on it: timeout horizons in member updates, request timing in
// the REST client, and the push timestamps recorded in sync state.
//
// Production code injects [Real]; tests inject [Fake] and move time
// explicitly with Set or Advance.
package clock
