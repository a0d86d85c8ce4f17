// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Choice is one predetermined value of a String, Integer, or Number
// option. The implementations are [StringChoice], [IntChoice], and
// [NumberChoice]; on the wire they differ only in the JSON shape of
// "value". All three are comparable.
type Choice interface {
	// Label returns the name shown to the user.
	Label() string

	isChoice()
}

// StringChoice is a choice with a string value.
type StringChoice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IntChoice is a choice with an integer value.
type IntChoice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// NumberChoice is a choice with a floating-point value.
type NumberChoice struct {
	Name  string `json:"name"`
	Value Number `json:"value"`
}

func (c StringChoice) Label() string { return c.Name }
func (c IntChoice) Label() string    { return c.Name }
func (c NumberChoice) Label() string { return c.Name }

func (StringChoice) isChoice() {}
func (IntChoice) isChoice()    {}
func (NumberChoice) isChoice() {}

type (
	stringChoiceWire StringChoice
	intChoiceWire    IntChoice
	numberChoiceWire NumberChoice
)

func (c StringChoice) MarshalJSON() ([]byte, error) { return json.Marshal(stringChoiceWire(c)) }
func (c IntChoice) MarshalJSON() ([]byte, error)    { return json.Marshal(intChoiceWire(c)) }
func (c NumberChoice) MarshalJSON() ([]byte, error) { return json.Marshal(numberChoiceWire(c)) }

// DecodeChoice decodes a single choice object, resolving the variant
// from the shape of its "value" member: a string, then an integer, then
// a float. Unknown members are ignored.
func DecodeChoice(data []byte) (Choice, error) {
	decoder := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))
	choice, err := decodeChoice(decoder)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(decoder); err != nil {
		return nil, err
	}
	return choice, nil
}

func decodeChoice(decoder *jsontext.Decoder) (Choice, error) {
	if err := beginObject(decoder, "choices"); err != nil {
		return nil, err
	}

	var (
		hasName, hasValue bool
		nameValue         string
		stringValue       string
		isString          bool
		numericValue      NumericValue
	)
	for {
		key, done, err := nextMember(decoder)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		switch key {
		case "name":
			if hasName {
				return nil, duplicateField(key)
			}
			hasName = true
			if nameValue, err = readString(decoder, key); err != nil {
				return nil, err
			}
		case "value":
			if hasValue {
				return nil, duplicateField(key)
			}
			hasValue = true
			kind, err := peek(decoder)
			if err != nil {
				return nil, err
			}
			switch kind {
			case '"':
				if stringValue, err = readString(decoder, key); err != nil {
					return nil, err
				}
				isString = true
			case '0':
				if numericValue, err = readNumeric(decoder, key); err != nil {
					return nil, err
				}
			default:
				return nil, shapeMismatch(key, "string, integer, or number", kind)
			}
		default:
			if err := skipValue(decoder); err != nil {
				return nil, err
			}
		}
	}

	if !hasName {
		return nil, missingField("name")
	}
	if !hasValue {
		return nil, missingField("value")
	}
	if isString {
		return StringChoice{Name: nameValue, Value: stringValue}, nil
	}
	if i, ok := numericValue.Int64(); ok {
		return IntChoice{Name: nameValue, Value: i}, nil
	}
	number, _ := numericValue.Number()
	return NumberChoice{Name: nameValue, Value: number}, nil
}
