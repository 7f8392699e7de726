// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package glob

import (
	"errors"
	"fmt"
)

// ErrTooManyGlobstars is returned if a pattern has more "**/" segments than
// [MaxGlobstars].
var ErrTooManyGlobstars = errors.New("too many globstar segments")

// PatternError is returned if a pattern can not be compiled. It carries the
// error of the underlying glob engine unchanged.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Is(other error) bool {
	_, ok := other.(*PatternError)
	return ok
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
