// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nullable provides [Field], the tri-state value used for
// optional fields in partial-update request bodies.
//
// The REST API treats three states of an update field differently:
//
//   - absent: leave the stored value unchanged
//   - null: clear the stored value
//   - a value: replace the stored value
//
// A *T or an omitempty tag can only express two of these. Field makes
// the third explicit. Its zero value is the absent state, and
// [Field.IsZero] reports it, so a struct field tagged `json:",omitzero"`
// is dropped from the encoded object until a caller sets it to [Null]
// or [Value]:
//
//	type updateMember struct {
//	    Nick nullable.Field[string] `json:"nick,omitzero"`
//	}
//
//	updateMember{}                                // {}
//	updateMember{Nick: nullable.Null[string]()}   // {"nick":null}
//	updateMember{Nick: nullable.Value("alice")}   // {"nick":"alice"}
//
// Field is write-only: it has no UnmarshalJSON. Responses never need to
// distinguish "omitted" from "absent", so response types use plain
// pointers.
//
// This package depends on no other switchboard packages.
package nullable
