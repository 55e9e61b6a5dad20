// This file is part of GoCIF.
//
// GoCIF is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoCIF is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoCIF.  If not, see <https://www.gnu.org/licenses/>.

// Package test provides a small set of assertion helpers, used by the
// tests of the curated, logger and test packages in place of a
// testing/assert framework.
package test

import (
	"reflect"
	"testing"
)

// isFailure decides whether v represents a "failure" value: a false bool,
// or a non-nil error. Anything else (including untyped nil and a nil
// error held in an interface) is considered success.
func isFailure(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case error:
		return x != nil
	default:
		return false
	}
}

// ExpectFailure asserts that v represents a failure value (false, or a
// non-nil error).
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	if !isFailure(v) {
		t.Errorf("expected failure but got %v (%T)", v, v)
		return false
	}
	return true
}

// ExpectSuccess asserts that v represents a success value (true, nil, or
// a nil error).
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	if isFailure(v) {
		t.Errorf("expected success but got %v (%T)", v, v)
		return false
	}
	return true
}

// Equate is a general purpose equality assertion. Errors are compared by
// their Error() string; everything else falls back to reflect.DeepEqual.
func Equate(t *testing.T, value interface{}, expectedValue interface{}) bool {
	t.Helper()
	if !equate(value, expectedValue) {
		t.Errorf("value is not as expected\n>> got:  %#v\n>> want: %#v", value, expectedValue)
		return false
	}
	return true
}

func equate(a, b interface{}) bool {
	if ae, ok := a.(error); ok {
		if be, ok := b.(error); ok {
			if ae == nil || be == nil {
				return ae == be
			}
			return ae.Error() == be.Error()
		}
		if b == nil {
			return ae == nil
		}
	}
	return reflect.DeepEqual(a, b)
}

// ExpectEquality asserts that a and b are deeply equal.
func ExpectEquality(t *testing.T, a interface{}, b interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected %#v to equal %#v", a, b)
		return false
	}
	return true
}

// ExpectInequality asserts that a and b are not deeply equal.
func ExpectInequality(t *testing.T, a interface{}, b interface{}) bool {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected %#v to not equal %#v", a, b)
		return false
	}
	return true
}

// ExpectApproximate asserts that a is within a fraction (tolerance) of
// the expected value b, for any of the builtin numeric types. A
// tolerance of 0.1 means a may deviate from b by up to 10% of b.
func ExpectApproximate(t *testing.T, a interface{}, b interface{}, tolerance float64) bool {
	t.Helper()
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		t.Errorf("ExpectApproximate: unsupported types %T / %T", a, b)
		return false
	}
	allowed := bf * tolerance
	if allowed < 0 {
		allowed = -allowed
	}
	diff := af - bf
	if diff < 0 {
		diff = -diff
	}
	if diff > allowed {
		t.Errorf("expected %v to be within %v%% of %v", a, tolerance*100, b)
		return false
	}
	return true
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
