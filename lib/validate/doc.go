// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate checks request parameters and command definitions
// against the limits the REST API enforces, so that bad input is
// rejected locally with a precise message instead of a generic 400
// from the service.
//
// Every failure is an [*Error] carrying a [Kind] and, for command
// definitions, the path of the offending option
// ("options[0].options[2]"). Checks over a whole command tree report
// every issue at once, combined with errors.Join; use [Issues] to
// recover the individual errors.
//
// This is not a schema engine. It covers the handful of constraints
// that callers commonly get wrong: nickname length (counted in UTF-16
// code units), timeout horizon, audit log reason length, and the name,
// description, and cardinality limits of application commands.
package validate
