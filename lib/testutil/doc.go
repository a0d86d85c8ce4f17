// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for switchboard
// packages.
//
// [WriteFile] writes a fixture into a test's temporary directory and
// returns its path. [Logger] returns a structured logger whose output
// goes to the test log, so log lines appear next to the failure that
// produced them and only when the test fails or runs with -v.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no switchboard-internal dependencies.
package testutil
