// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/bureau-foundation/switchboard/lib/model/channel"
)

// Decoder decodes command options. The zero value is not usable; call
// [NewDecoder]. A Decoder holds no per-call state and is safe for
// concurrent use.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder returns a Decoder that logs decode activity at debug level.
// A nil logger discards all output.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{logger: logger}
}

var defaultDecoder = NewDecoder(nil)

// DecodeOption decodes one command option from data. Trailing data after
// the option is an error.
func DecodeOption(data []byte) (Option, error) {
	return defaultDecoder.Decode(data)
}

// Decode decodes one command option from data.
func (d *Decoder) Decode(data []byte) (Option, error) {
	d.logger.Debug("decoding command option", "bytes", len(data))

	decoder := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))
	option, err := decodeOption(decoder)
	if err == nil {
		err = expectEnd(decoder)
	}
	if err != nil {
		d.logger.Debug("command option decode failed", "error", err)
		return nil, err
	}

	d.logger.Debug("decoded command option",
		"type", option.Kind().String(),
		"name", NameOf(option),
	)
	return option, nil
}

// DecodeOptions decodes a JSON array of command options. A null array
// decodes to an empty slice.
func (d *Decoder) DecodeOptions(data []byte) ([]Option, error) {
	d.logger.Debug("decoding command options", "bytes", len(data))

	decoder := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))
	options, err := readOptions(decoder, "options")
	if err == nil {
		err = expectEnd(decoder)
	}
	if err != nil {
		d.logger.Debug("command options decode failed", "error", err)
		return nil, err
	}
	if options == nil {
		options = []Option{}
	}

	d.logger.Debug("decoded command options", "count", len(options))
	return options, nil
}

// optionSlots records every known member of an option object. The
// collection and bound members track presence separately from value so
// that an explicit null still counts as the member's one occurrence.
type optionSlots struct {
	hasAutocomplete bool
	autocomplete    bool

	hasChannelTypes bool
	channelTypes    []channel.Type

	hasChoices bool
	choices    []Choice

	hasDescription bool
	description    string

	hasMaxValue bool
	maxValue    *NumericValue

	hasMinValue bool
	minValue    *NumericValue

	hasName bool
	name    string

	hasOptions bool
	options    []Option

	hasRequired bool
	required    bool

	hasType bool
	code    int64
}

// decodeOption reads exactly one option object from decoder.
func decodeOption(decoder *jsontext.Decoder) (Option, error) {
	if err := beginObject(decoder, "options"); err != nil {
		return nil, err
	}

	var slots optionSlots
	for {
		key, done, err := nextMember(decoder)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if err := slots.read(decoder, key); err != nil {
			return nil, err
		}
	}

	return slots.build()
}

func (s *optionSlots) read(decoder *jsontext.Decoder, key string) error {
	var err error
	switch key {
	case "autocomplete":
		if s.hasAutocomplete {
			return duplicateField(key)
		}
		s.hasAutocomplete = true
		s.autocomplete, err = readBool(decoder, key)
	case "channel_types":
		if s.hasChannelTypes {
			return duplicateField(key)
		}
		s.hasChannelTypes = true
		s.channelTypes, err = readChannelTypes(decoder, key)
	case "choices":
		if s.hasChoices {
			return duplicateField(key)
		}
		s.hasChoices = true
		s.choices, err = readChoices(decoder, key)
	case "description":
		if s.hasDescription {
			return duplicateField(key)
		}
		s.hasDescription = true
		s.description, err = readString(decoder, key)
	case "max_value":
		if s.hasMaxValue {
			return duplicateField(key)
		}
		s.hasMaxValue = true
		s.maxValue, err = readOptionalNumeric(decoder, key)
	case "min_value":
		if s.hasMinValue {
			return duplicateField(key)
		}
		s.hasMinValue = true
		s.minValue, err = readOptionalNumeric(decoder, key)
	case "name":
		if s.hasName {
			return duplicateField(key)
		}
		s.hasName = true
		s.name, err = readString(decoder, key)
	case "options":
		if s.hasOptions {
			return duplicateField(key)
		}
		s.hasOptions = true
		s.options, err = readOptions(decoder, key)
	case "required":
		if s.hasRequired {
			return duplicateField(key)
		}
		s.hasRequired = true
		s.required, err = readBool(decoder, key)
	case "type":
		if s.hasType {
			return duplicateField(key)
		}
		s.hasType = true
		s.code, err = readDiscriminant(decoder, key)
	default:
		err = skipValue(decoder)
	}
	return err
}

// build validates presence of the required members and constructs the
// variant selected by the discriminant. Each variant takes only its own
// members; absent collections become empty slices.
func (s *optionSlots) build() (Option, error) {
	if !s.hasDescription {
		return nil, missingField("description")
	}
	if !s.hasName {
		return nil, missingField("name")
	}
	if !s.hasType {
		return nil, missingField("type")
	}

	choices := s.choices
	if choices == nil {
		choices = []Choice{}
	}
	options := s.options
	if options == nil {
		options = []Option{}
	}
	channelTypes := s.channelTypes
	if channelTypes == nil {
		channelTypes = []channel.Type{}
	}

	base := BaseData{Description: s.description, Name: s.name, Required: s.required}
	container := OptionsData{Description: s.description, Name: s.name, Options: options}
	numeric := NumberData{
		Autocomplete: s.autocomplete,
		Choices:      choices,
		Description:  s.description,
		MaxValue:     s.maxValue,
		MinValue:     s.minValue,
		Name:         s.name,
		Required:     s.required,
	}

	switch OptionType(s.code) {
	case TypeSubCommand:
		return SubCommand(container), nil
	case TypeSubCommandGroup:
		return SubCommandGroup(container), nil
	case TypeString:
		return StringOption{
			Autocomplete: s.autocomplete,
			Choices:      choices,
			Description:  s.description,
			Name:         s.name,
			Required:     s.required,
		}, nil
	case TypeInteger:
		return IntegerOption(numeric), nil
	case TypeBoolean:
		return BooleanOption(base), nil
	case TypeUser:
		return UserOption(base), nil
	case TypeChannel:
		return ChannelOption{
			ChannelTypes: channelTypes,
			Description:  s.description,
			Name:         s.name,
			Required:     s.required,
		}, nil
	case TypeRole:
		return RoleOption(base), nil
	case TypeMentionable:
		return MentionableOption(base), nil
	case TypeNumber:
		return NumberOption(numeric), nil
	default:
		return nil, unknownVariant(s.code)
	}
}

// readDiscriminant reads the "type" member. The discriminant must be an
// integer literal; range checking happens at dispatch so that a large
// code still reports UnknownVariant.
func readDiscriminant(decoder *jsontext.Decoder, field string) (int64, error) {
	kind, err := peek(decoder)
	if err != nil {
		return 0, err
	}
	if kind != '0' {
		return 0, shapeMismatch(field, "integer", kind)
	}
	token, err := decoder.ReadToken()
	if err != nil {
		return 0, invalidSyntax(err)
	}
	literal := token.String()
	if strings.ContainsAny(literal, ".eE") {
		return 0, &DecodeError{Kind: ShapeMismatch, Field: field, Expected: "integer", Found: literal}
	}
	code, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0, &DecodeError{Kind: ShapeMismatch, Field: field, Expected: "integer", Found: literal, Err: err}
	}
	return code, nil
}

func readOptions(decoder *jsontext.Decoder, field string) ([]Option, error) {
	isNull, err := beginArray(decoder, field)
	if err != nil || isNull {
		return nil, err
	}
	options := []Option{}
	for {
		done, err := arrayDone(decoder)
		if err != nil {
			return nil, err
		}
		if done {
			return options, nil
		}
		option, err := decodeOption(decoder)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}
}

func readChoices(decoder *jsontext.Decoder, field string) ([]Choice, error) {
	isNull, err := beginArray(decoder, field)
	if err != nil || isNull {
		return nil, err
	}
	choices := []Choice{}
	for {
		done, err := arrayDone(decoder)
		if err != nil {
			return nil, err
		}
		if done {
			return choices, nil
		}
		choice, err := decodeChoice(decoder)
		if err != nil {
			return nil, err
		}
		choices = append(choices, choice)
	}
}

func readChannelTypes(decoder *jsontext.Decoder, field string) ([]channel.Type, error) {
	isNull, err := beginArray(decoder, field)
	if err != nil || isNull {
		return nil, err
	}
	types := []channel.Type{}
	for {
		done, err := arrayDone(decoder)
		if err != nil {
			return nil, err
		}
		if done {
			return types, nil
		}
		kind, err := peek(decoder)
		if err != nil {
			return nil, err
		}
		if kind != '0' {
			return nil, shapeMismatch(field, "channel type integer", kind)
		}
		token, err := decoder.ReadToken()
		if err != nil {
			return nil, invalidSyntax(err)
		}
		code, err := strconv.ParseUint(token.String(), 10, 8)
		if err != nil {
			return nil, &DecodeError{
				Kind:     ShapeMismatch,
				Field:    field,
				Expected: "channel type integer 0-255",
				Found:    token.String(),
			}
		}
		types = append(types, channel.Type(code))
	}
}

func readOptionalNumeric(decoder *jsontext.Decoder, field string) (*NumericValue, error) {
	kind, err := peek(decoder)
	if err != nil {
		return nil, err
	}
	if kind == 'n' {
		if _, err := decoder.ReadToken(); err != nil {
			return nil, invalidSyntax(err)
		}
		return nil, nil
	}
	value, err := readNumeric(decoder, field)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func readNumeric(decoder *jsontext.Decoder, field string) (NumericValue, error) {
	kind, err := peek(decoder)
	if err != nil {
		return NumericValue{}, err
	}
	if kind != '0' {
		return NumericValue{}, shapeMismatch(field, "integer or number", kind)
	}
	token, err := decoder.ReadToken()
	if err != nil {
		return NumericValue{}, invalidSyntax(err)
	}
	value, err := parseNumeric(token.String())
	if err != nil {
		return NumericValue{}, &DecodeError{
			Kind:     ShapeMismatch,
			Field:    field,
			Expected: "finite number",
			Found:    token.String(),
			Err:      err,
		}
	}
	return value, nil
}

func readString(decoder *jsontext.Decoder, field string) (string, error) {
	kind, err := peek(decoder)
	if err != nil {
		return "", err
	}
	if kind != '"' {
		return "", shapeMismatch(field, "string", kind)
	}
	token, err := decoder.ReadToken()
	if err != nil {
		return "", invalidSyntax(err)
	}
	return token.String(), nil
}

func readBool(decoder *jsontext.Decoder, field string) (bool, error) {
	kind, err := peek(decoder)
	if err != nil {
		return false, err
	}
	if kind != 't' && kind != 'f' {
		return false, shapeMismatch(field, "boolean", kind)
	}
	token, err := decoder.ReadToken()
	if err != nil {
		return false, invalidSyntax(err)
	}
	return token.Bool(), nil
}

// beginObject consumes the '{' that starts an object. field names the
// member holding the object, for error messages.
func beginObject(decoder *jsontext.Decoder, field string) error {
	kind, err := peek(decoder)
	if err != nil {
		return err
	}
	if kind != '{' {
		return shapeMismatch(field, "object", kind)
	}
	if _, err := decoder.ReadToken(); err != nil {
		return invalidSyntax(err)
	}
	return nil
}

// nextMember returns the next member name of the current object, or
// done=true after consuming the closing '}'.
func nextMember(decoder *jsontext.Decoder) (string, bool, error) {
	token, err := decoder.ReadToken()
	if err != nil {
		return "", false, invalidSyntax(err)
	}
	if token.Kind() == '}' {
		return "", true, nil
	}
	return token.String(), false, nil
}

// beginArray consumes '[' or a null. isNull reports the latter.
func beginArray(decoder *jsontext.Decoder, field string) (bool, error) {
	kind, err := peek(decoder)
	if err != nil {
		return false, err
	}
	switch kind {
	case 'n':
		if _, err := decoder.ReadToken(); err != nil {
			return false, invalidSyntax(err)
		}
		return true, nil
	case '[':
		if _, err := decoder.ReadToken(); err != nil {
			return false, invalidSyntax(err)
		}
		return false, nil
	default:
		return false, shapeMismatch(field, "array or null", kind)
	}
}

// arrayDone consumes the closing ']' if it is next.
func arrayDone(decoder *jsontext.Decoder) (bool, error) {
	kind, err := peek(decoder)
	if err != nil {
		return false, err
	}
	if kind != ']' {
		return false, nil
	}
	if _, err := decoder.ReadToken(); err != nil {
		return false, invalidSyntax(err)
	}
	return true, nil
}

func skipValue(decoder *jsontext.Decoder) error {
	if err := decoder.SkipValue(); err != nil {
		return invalidSyntax(err)
	}
	return nil
}

// peek returns the kind of the next token. PeekKind reports an invalid
// kind on any error; reading the token surfaces the error itself.
func peek(decoder *jsontext.Decoder) (jsontext.Kind, error) {
	kind := decoder.PeekKind()
	if kind != 0 {
		return kind, nil
	}
	_, err := decoder.ReadToken()
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return 0, invalidSyntax(err)
}

// expectEnd fails unless the input holds nothing after the value just
// decoded.
func expectEnd(decoder *jsontext.Decoder) error {
	_, err := decoder.ReadToken()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		err = errors.New("unexpected data after top-level value")
	}
	return invalidSyntax(err)
}

func shapeMismatch(field, expected string, kind jsontext.Kind) error {
	return &DecodeError{Kind: ShapeMismatch, Field: field, Expected: expected, Found: kindName(kind)}
}

func kindName(kind jsontext.Kind) string {
	switch kind {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	case '0':
		return "number"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return kind.String()
	}
}
