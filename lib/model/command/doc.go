// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package command models application commands and implements the codec
// for their polymorphic options.
//
// A command option is a discriminated union: the "type" member selects
// one of ten variants, and each variant accepts a different subset of
// the remaining members. [Option] is a sealed interface implemented by
// one struct per variant:
//
//   - containers: [SubCommand], [SubCommandGroup] (nested options)
//   - [StringOption] (choices, autocomplete)
//   - [IntegerOption], [NumberOption] (choices, autocomplete, bounds)
//   - [ChannelOption] (channel kind restriction)
//   - [BooleanOption], [UserOption], [RoleOption], [MentionableOption]
//
// Decoding ([DecodeOption], [Decoder]) makes a single pass over the
// object's members in document order, records each known member in its
// own slot, fails on the second occurrence of any known member, skips
// unknown members, and only then dispatches on the discriminant. Nested
// options are decoded recursively from the same token stream, so the
// tokenizer's depth limit bounds recursion on hostile input. Failures
// are reported as [*DecodeError].
//
// Encoding projects every variant onto one shared envelope and omits
// members the variant does not have. Containers always carry an
// "options" array and choice-bearing variants always carry a "choices"
// array, even when empty. "required" and "autocomplete" are omitted when
// false, "channel_types" when empty.
//
// [Choice] and [NumericValue] are untagged: their variant is chosen by
// the JSON shape of the value, trying string, then integer, then
// floating point. A number literal is an integer only if it has no
// fraction or exponent and fits in 64 bits, so 2 and 2.0 decode to
// different variants. Floating-point values always encode with a
// fraction or exponent so that they decode back to the same variant.
// Floating-point values are stored by bit pattern, which makes equality
// exact (+0.0 and -0.0 differ, a NaN equals itself) and lets them be
// used as map keys.
package command
