// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"errors"
	"fmt"
)

// Kind identifies which constraint an [Error] reports.
type Kind uint8

const (
	KindNickname Kind = iota + 1
	KindCommunicationDisabledUntil
	KindAuditReason
	KindCommandName
	KindCommandDescription
	KindCommandCount
	KindOptionName
	KindOptionDescription
	KindOptionCount
	KindOptionOrder
	KindChoiceCount
	KindChoiceName
	KindBounds
)

func (k Kind) String() string {
	switch k {
	case KindNickname:
		return "nickname"
	case KindCommunicationDisabledUntil:
		return "communication_disabled_until"
	case KindAuditReason:
		return "audit reason"
	case KindCommandName:
		return "command name"
	case KindCommandDescription:
		return "command description"
	case KindCommandCount:
		return "command count"
	case KindOptionName:
		return "option name"
	case KindOptionDescription:
		return "option description"
	case KindOptionCount:
		return "option count"
	case KindOptionOrder:
		return "option order"
	case KindChoiceCount:
		return "choice count"
	case KindChoiceName:
		return "choice name"
	case KindBounds:
		return "bounds"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is a single validation failure.
type Error struct {
	Kind Kind
	// Path locates the failure inside a command definition. Empty for
	// scalar checks.
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("validate: %s: %s", e.Path, e.Message)
	}
	return "validate: " + e.Message
}

// IsKind reports whether err is, wraps, or joins an *Error of the given
// kind.
func IsKind(err error, kind Kind) bool {
	for _, issue := range Issues(err) {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}

// Issues flattens err into its validation errors, descending into
// errors.Join trees and wrapped errors. Errors that are not *Error are
// skipped.
func Issues(err error) []*Error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var issues []*Error
		for _, inner := range joined.Unwrap() {
			issues = append(issues, Issues(inner)...)
		}
		return issues
	}
	var validationErr *Error
	if errors.As(err, &validationErr) {
		return []*Error{validationErr}
	}
	return nil
}

func newError(kind Kind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}
