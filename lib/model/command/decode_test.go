// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/bureau-foundation/switchboard/lib/model/channel"
)

func TestDecodeOptionVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Option
	}{
		{
			name:  "subcommand without options",
			input: `{"type":1,"name":"add","description":"Add an item"}`,
			want:  SubCommand{Name: "add", Description: "Add an item", Options: []Option{}},
		},
		{
			name:  "subcommand group with null options",
			input: `{"type":2,"name":"admin","description":"Admin tools","options":null}`,
			want:  SubCommandGroup{Name: "admin", Description: "Admin tools", Options: []Option{}},
		},
		{
			name:  "string with autocomplete",
			input: `{"type":3,"name":"query","description":"Search text","autocomplete":true,"required":true}`,
			want: StringOption{
				Autocomplete: true,
				Choices:      []Choice{},
				Description:  "Search text",
				Name:         "query",
				Required:     true,
			},
		},
		{
			name:  "integer with bounds",
			input: `{"type":4,"name":"count","description":"How many","min_value":1,"max_value":10}`,
			want: IntegerOption{
				Choices:     []Choice{},
				Description: "How many",
				MaxValue:    ptr(IntegerValue(10)),
				MinValue:    ptr(IntegerValue(1)),
				Name:        "count",
			},
		},
		{
			name:  "boolean",
			input: `{"type":5,"name":"loud","description":"Be loud","required":false}`,
			want:  BooleanOption{Name: "loud", Description: "Be loud"},
		},
		{
			name:  "user",
			input: `{"type":6,"name":"target","description":"Who","required":true}`,
			want:  UserOption{Name: "target", Description: "Who", Required: true},
		},
		{
			name:  "channel with types",
			input: `{"type":7,"name":"where","description":"Where","channel_types":[0,5]}`,
			want: ChannelOption{
				ChannelTypes: []channel.Type{channel.GuildText, channel.GuildNews},
				Description:  "Where",
				Name:         "where",
			},
		},
		{
			name:  "role",
			input: `{"type":8,"name":"role","description":"Which role"}`,
			want:  RoleOption{Name: "role", Description: "Which role"},
		},
		{
			name:  "mentionable",
			input: `{"type":9,"name":"who","description":"Anyone"}`,
			want:  MentionableOption{Name: "who", Description: "Anyone"},
		},
		{
			name:  "number with float bounds",
			input: `{"type":10,"name":"ratio","description":"Ratio","min_value":0.5,"max_value":2}`,
			want: NumberOption{
				Choices:     []Choice{},
				Description: "Ratio",
				MaxValue:    ptr(IntegerValue(2)),
				MinValue:    ptr(FloatValue(0.5)),
				Name:        "ratio",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeOption([]byte(test.input))
			if err != nil {
				t.Fatalf("DecodeOption: %v", err)
			}
			if got.Kind() != test.want.Kind() {
				t.Fatalf("Kind = %v, want %v", got.Kind(), test.want.Kind())
			}
			if !Equal(got, test.want) {
				t.Errorf("DecodeOption = %#v, want %#v", got, test.want)
			}
		})
	}
}

func TestDecodeOptionDefaultsEmptyCollections(t *testing.T) {
	t.Parallel()

	option, err := DecodeOption([]byte(`{"type":1,"name":"x","description":"y","options":null}`))
	if err != nil {
		t.Fatalf("DecodeOption: %v", err)
	}
	sub, ok := option.(SubCommand)
	if !ok {
		t.Fatalf("DecodeOption returned %T, want SubCommand", option)
	}
	if sub.Options == nil || len(sub.Options) != 0 {
		t.Errorf("Options = %#v, want non-nil empty slice", sub.Options)
	}

	encoded, err := EncodeOption(option)
	if err != nil {
		t.Fatalf("EncodeOption: %v", err)
	}
	if want := `{"description":"y","name":"x","options":[],"type":1}`; string(encoded) != want {
		t.Errorf("EncodeOption = %s, want %s", encoded, want)
	}
}

func TestDecodeOptionIgnoresForeignFields(t *testing.T) {
	t.Parallel()

	// A boolean option carrying members that belong to other variants
	// decodes as a plain boolean, and re-encodes without them.
	input := `{"type":5,"name":"flag","description":"A flag","choices":[{"name":"a","value":1}],` +
		`"channel_types":[0],"min_value":1,"max_value":2,"options":[],"autocomplete":true,"extra":{"nested":[1,2]}}`
	option, err := DecodeOption([]byte(input))
	if err != nil {
		t.Fatalf("DecodeOption: %v", err)
	}
	want := BooleanOption{Name: "flag", Description: "A flag"}
	if option != Option(want) {
		t.Errorf("DecodeOption = %#v, want %#v", option, want)
	}
	if option.IsAutocomplete() {
		t.Error("boolean option reports autocomplete")
	}

	encoded, err := EncodeOption(option)
	if err != nil {
		t.Fatalf("EncodeOption: %v", err)
	}
	if want := `{"description":"A flag","name":"flag","type":5}`; string(encoded) != want {
		t.Errorf("EncodeOption = %s, want %s", encoded, want)
	}
}

func TestDecodeOptionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  DecodeErrorKind
		field string
		code  int64
	}{
		{
			name:  "duplicate name",
			input: `{"type":3,"name":"a","name":"b","description":"d"}`,
			kind:  DuplicateField,
			field: "name",
		},
		{
			name:  "duplicate null options",
			input: `{"type":1,"name":"a","description":"d","options":null,"options":[]}`,
			kind:  DuplicateField,
			field: "options",
		},
		{
			name:  "duplicate type before missing name",
			input: `{"type":3,"type":3}`,
			kind:  DuplicateField,
			field: "type",
		},
		{
			name:  "duplicate in nested option",
			input: `{"type":1,"name":"a","description":"d","options":[{"type":5,"name":"b","description":"e","required":true,"required":false}]}`,
			kind:  DuplicateField,
			field: "required",
		},
		{
			name:  "missing description checked first",
			input: `{}`,
			kind:  MissingField,
			field: "description",
		},
		{
			name:  "missing name",
			input: `{"type":3,"description":"d"}`,
			kind:  MissingField,
			field: "name",
		},
		{
			name:  "missing type",
			input: `{"name":"a","description":"d"}`,
			kind:  MissingField,
			field: "type",
		},
		{
			name:  "missing field in nested option",
			input: `{"type":2,"name":"g","description":"d","options":[{"type":1,"name":"s"}]}`,
			kind:  MissingField,
			field: "description",
		},
		{
			name:  "unknown variant",
			input: `{"type":11,"name":"a","description":"d"}`,
			kind:  UnknownVariant,
			code:  11,
		},
		{
			name:  "zero variant",
			input: `{"type":0,"name":"a","description":"d"}`,
			kind:  UnknownVariant,
			code:  0,
		},
		{
			name:  "fractional type",
			input: `{"type":3.0,"name":"a","description":"d"}`,
			kind:  ShapeMismatch,
			field: "type",
		},
		{
			name:  "string type",
			input: `{"type":"3","name":"a","description":"d"}`,
			kind:  ShapeMismatch,
			field: "type",
		},
		{
			name:  "null name",
			input: `{"type":3,"name":null,"description":"d"}`,
			kind:  ShapeMismatch,
			field: "name",
		},
		{
			name:  "required not boolean",
			input: `{"type":3,"name":"a","description":"d","required":"yes"}`,
			kind:  ShapeMismatch,
			field: "required",
		},
		{
			name:  "choice value object",
			input: `{"type":3,"name":"a","description":"d","choices":[{"name":"c","value":{}}]}`,
			kind:  ShapeMismatch,
			field: "value",
		},
		{
			name:  "bound out of float range",
			input: `{"type":10,"name":"a","description":"d","max_value":1e400}`,
			kind:  ShapeMismatch,
			field: "max_value",
		},
		{
			name:  "channel type out of range",
			input: `{"type":7,"name":"a","description":"d","channel_types":[256]}`,
			kind:  ShapeMismatch,
			field: "channel_types",
		},
		{
			name:  "not an object",
			input: `[]`,
			kind:  ShapeMismatch,
			field: "options",
		},
		{
			name:  "truncated",
			input: `{"type":3,"name":"a"`,
			kind:  InvalidSyntax,
		},
		{
			name:  "empty input",
			input: ``,
			kind:  InvalidSyntax,
		},
		{
			name:  "trailing data",
			input: `{"type":5,"name":"a","description":"d"} {}`,
			kind:  InvalidSyntax,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			option, err := DecodeOption([]byte(test.input))
			if err == nil {
				t.Fatalf("DecodeOption succeeded with %#v, want error", option)
			}
			if option != nil {
				t.Errorf("DecodeOption returned partial result %#v", option)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error %v (%T) is not a *DecodeError", err, err)
			}
			if decodeErr.Kind != test.kind {
				t.Fatalf("Kind = %v, want %v (error: %v)", decodeErr.Kind, test.kind, err)
			}
			if test.field != "" && decodeErr.Field != test.field {
				t.Errorf("Field = %q, want %q", decodeErr.Field, test.field)
			}
			if test.kind == UnknownVariant && decodeErr.Code != test.code {
				t.Errorf("Code = %d, want %d", decodeErr.Code, test.code)
			}
			if !IsDecodeError(err, test.kind) {
				t.Errorf("IsDecodeError(err, %v) = false", test.kind)
			}
		})
	}
}

func TestDecodeOptionDeepNestingFails(t *testing.T) {
	t.Parallel()

	// Far deeper than the tokenizer's depth limit; must fail cleanly
	// rather than exhaust the stack.
	const depth = 20000
	var input strings.Builder
	for range depth {
		input.WriteString(`{"type":1,"name":"n","description":"d","options":[`)
	}
	for range depth {
		input.WriteString(`]}`)
	}

	_, err := DecodeOption([]byte(input.String()))
	if !IsDecodeError(err, InvalidSyntax) {
		t.Fatalf("DecodeOption error = %v, want InvalidSyntax", err)
	}
}

func TestDecoderLogs(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	decoder := NewDecoder(logger)

	if _, err := decoder.Decode([]byte(`{"type":6,"name":"who","description":"d"}`)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(buffer.String(), "decoded command option") || !strings.Contains(buffer.String(), "type=User") {
		t.Errorf("log output missing decode record:\n%s", buffer.String())
	}

	buffer.Reset()
	if _, err := decoder.Decode([]byte(`{"type":99,"name":"x","description":"d"}`)); err == nil {
		t.Fatal("Decode succeeded for unknown variant")
	}
	if !strings.Contains(buffer.String(), "command option decode failed") {
		t.Errorf("log output missing failure record:\n%s", buffer.String())
	}
}

func TestDecodeOptions(t *testing.T) {
	t.Parallel()

	options, err := NewDecoder(nil).DecodeOptions([]byte(`[{"type":5,"name":"a","description":"b"},{"type":8,"name":"r","description":"s"}]`))
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	want := []Option{
		BooleanOption{Name: "a", Description: "b"},
		RoleOption{Name: "r", Description: "s"},
	}
	if !EqualOptions(options, want) {
		t.Errorf("DecodeOptions = %#v, want %#v", options, want)
	}

	empty, err := NewDecoder(nil).DecodeOptions([]byte(`null`))
	if err != nil {
		t.Fatalf("DecodeOptions(null): %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("DecodeOptions(null) = %#v, want empty slice", empty)
	}
}

func ptr[T any](value T) *T {
	return &value
}
