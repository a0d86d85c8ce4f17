// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the current time for testability. Functions that
// would call time.Now accept a Clock (or are methods on a struct with
// a Clock field) instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
