// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nullable

import (
	"encoding/json"
	"errors"
	"fmt"
)

// state is the tri-state discriminant. The zero value is unset so that
// a zero Field is always "leave unchanged".
type state uint8

const (
	unset state = iota
	null
	present
)

// ErrUnset is returned when an unset Field is marshaled directly. An
// unset field has no JSON representation: it must be dropped by the
// enclosing struct's omitzero tag. Encoding it as null would silently
// turn "leave unchanged" into "clear".
var ErrUnset = errors.New("nullable: unset field has no JSON representation (missing omitzero tag?)")

// Field is an optional update field with three distinguishable states:
// unset, explicitly null, or set to a value.
//
// A Field's state is fixed once constructed. The zero value is unset.
type Field[T any] struct {
	state state
	value T
}

// Null returns a Field that encodes as JSON null (clear the value).
func Null[T any]() Field[T] {
	return Field[T]{state: null}
}

// Value returns a Field that encodes as value.
func Value[T any](value T) Field[T] {
	return Field[T]{state: present, value: value}
}

// FromPointer returns Null for a nil pointer and Value(*pointer)
// otherwise. This matches the common setter shape where the caller
// passes nil to clear.
func FromPointer[T any](pointer *T) Field[T] {
	if pointer == nil {
		return Null[T]()
	}
	return Value(*pointer)
}

// IsZero reports whether the field is unset. encoding/json calls this
// for fields tagged omitzero.
func (f Field[T]) IsZero() bool { return f.state == unset }

// IsNull reports whether the field is explicitly null.
func (f Field[T]) IsNull() bool { return f.state == null }

// Get returns the value and true when the field holds a value. Unset
// and null fields return the zero T and false.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == present
}

// String describes the state for logs and test failures.
func (f Field[T]) String() string {
	switch f.state {
	case null:
		return "null"
	case present:
		return fmt.Sprintf("value(%v)", f.value)
	default:
		return "unset"
	}
}

// Encode returns the presence-tagged JSON form of the field. present is
// false for an unset field, in which case raw is nil and the caller must
// omit the key. A null field returns present=true and raw="null".
func (f Field[T]) Encode() (raw json.RawMessage, present bool, err error) {
	switch f.state {
	case unset:
		return nil, false, nil
	case null:
		return json.RawMessage("null"), true, nil
	default:
		encoded, err := json.Marshal(f.value)
		if err != nil {
			return nil, true, fmt.Errorf("nullable: encoding value: %w", err)
		}
		return encoded, true, nil
	}
}

// MarshalJSON implements json.Marshaler. It fails with ErrUnset for an
// unset field; see the package documentation for the omitzero tag.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	raw, present, err := f.Encode()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, ErrUnset
	}
	return raw, nil
}
