// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build version information for the switchboard
// binary and the User-Agent the REST client sends.
//
// Values are injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/switchboard/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When GitCommit was not injected, the VCS stamp recorded by the Go
// toolchain (runtime/debug build info) is used instead.
package version
