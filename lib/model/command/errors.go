// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
)

// DecodeErrorKind classifies a [DecodeError].
type DecodeErrorKind uint8

const (
	// MissingField: a required member (description, name, type, or a
	// choice's name or value) is absent.
	MissingField DecodeErrorKind = iota + 1

	// DuplicateField: a known member appears more than once in one
	// object.
	DuplicateField

	// UnknownVariant: the "type" discriminant is not 1 through 10.
	UnknownVariant

	// ShapeMismatch: a member's JSON value has the wrong shape.
	ShapeMismatch

	// InvalidSyntax: the input is not well-formed JSON.
	InvalidSyntax
)

func (k DecodeErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case DuplicateField:
		return "duplicate field"
	case UnknownVariant:
		return "unknown variant"
	case ShapeMismatch:
		return "shape mismatch"
	case InvalidSyntax:
		return "invalid syntax"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", uint8(k))
	}
}

// DecodeError is returned when a command option or choice cannot be
// decoded. No partial result accompanies it.
type DecodeError struct {
	Kind DecodeErrorKind

	// Field is the member name for MissingField, DuplicateField, and
	// ShapeMismatch.
	Field string

	// Code is the unrecognized discriminant for UnknownVariant.
	Code int64

	// Expected and Found describe a ShapeMismatch.
	Expected string
	Found    string

	// Err is the underlying tokenizer or parse error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("command option: missing field %q", e.Field)
	case DuplicateField:
		return fmt.Sprintf("command option: duplicate field %q", e.Field)
	case UnknownVariant:
		return fmt.Sprintf("command option: unknown option type %d", e.Code)
	case ShapeMismatch:
		message := fmt.Sprintf("command option: field %q: expected %s", e.Field, e.Expected)
		if e.Found != "" {
			message += ", found " + e.Found
		}
		if e.Err != nil {
			message += ": " + e.Err.Error()
		}
		return message
	default:
		return fmt.Sprintf("command option: invalid JSON: %v", e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err is or wraps a *DecodeError of the
// given kind.
func IsDecodeError(err error, kind DecodeErrorKind) bool {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Kind == kind
	}
	return false
}

func missingField(field string) error {
	return &DecodeError{Kind: MissingField, Field: field}
}

func duplicateField(field string) error {
	return &DecodeError{Kind: DuplicateField, Field: field}
}

func unknownVariant(code int64) error {
	return &DecodeError{Kind: UnknownVariant, Code: code}
}

func invalidSyntax(err error) error {
	return &DecodeError{Kind: InvalidSyntax, Err: err}
}
