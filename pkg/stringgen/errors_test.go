// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

import (
	"errors"
	"testing"
)

func TestPatternErrorWrapsBaseAndSpecificSentinels(t *testing.T) {
	_, err := Parse("(")
	if err == nil {
		t.Fatal("Parse(\"(\") succeeded, want an error")
	}
	if !errors.Is(err, Error) {
		t.Error("parse error does not satisfy errors.Is(err, Error)")
	}
	if !errors.Is(err, ErrPattern) {
		t.Error("parse error does not satisfy errors.Is(err, ErrPattern)")
	}
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Error("parse error is not a *PatternError")
	}
}

func TestMaxIterationsReachedErrorWraps(t *testing.T) {
	err := &MaxIterationsReachedError{Requested: 5, Collected: 2, MaxIter: 10}
	if !errors.Is(err, Error) || !errors.Is(err, ErrMaxIterationsReached) {
		t.Error("MaxIterationsReachedError does not wrap expected sentinels")
	}
}
