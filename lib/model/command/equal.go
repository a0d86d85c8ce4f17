// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import "slices"

// Equal reports whether two options encode identically: same variant,
// same members, recursively equal nested options. A nil collection and
// an empty one are equal. Floating-point values compare by bit pattern.
func Equal(a, b Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	x, y := a.envelope(), b.envelope()
	if x.Kind != y.Kind ||
		x.Name != y.Name ||
		x.Description != y.Description ||
		x.Required != y.Required ||
		x.Autocomplete != y.Autocomplete {
		return false
	}
	if !slices.Equal(x.ChannelTypes, y.ChannelTypes) {
		return false
	}
	if !equalBound(x.MinValue, y.MinValue) || !equalBound(x.MaxValue, y.MaxValue) {
		return false
	}
	if !slices.Equal(derefChoices(x.Choices), derefChoices(y.Choices)) {
		return false
	}
	return slices.EqualFunc(derefOptions(x.Options), derefOptions(y.Options), Equal)
}

// EqualOptions reports whether two option lists are pairwise [Equal].
func EqualOptions(a, b []Option) bool {
	return slices.EqualFunc(a, b, Equal)
}

func equalBound(a, b *NumericValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func derefChoices(choices *[]Choice) []Choice {
	if choices == nil {
		return nil
	}
	return *choices
}

func derefOptions(options *[]Option) []Option {
	if options == nil {
		return nil
	}
	return *options
}
