// This file is part of Palgen.
//
// Palgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Palgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Palgen.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// id returns a string to be used as a prefix in test failure messages. the
// tags arguments are the optional tags given to the test function
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := strings.Builder{}
	for _, tag := range tags {
		s.WriteString(fmt.Sprintf("%v ", tag))
	}
	return fmt.Sprintf("[%s] ", strings.TrimSpace(s.String()))
}

// expect tests the value v for a success condition suitable for its type.
// currently supported types:
//
//	bool    -> true
//	error   -> nil
//	nil     -> success
//
// unsupported types are a test fatality
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// ie. the test does not want the values to be equal
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

type approximable interface {
	~int | ~int64 | ~float32 | ~float64
}

// ExpectApproximate is used to test approximate equality between one value
// and another. the tolerance is a fraction of the expected value. for
// example, a tolerance of 0.1 means that the test value can be within 10%
// either side of the expected value
func ExpectApproximate[T approximable](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	allowed := math.Abs(float64(expectedValue) * tolerance)
	if math.Abs(float64(v)-float64(expectedValue)) > allowed {
		t.Errorf("%sapproximation test of type %T failed: '%v' is more than %v away from '%v'",
			id(tags...), v, v, allowed, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test for a value which indicates a 'successful'
// value for the type. see the expect() function for the supported types
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. see the expect() function for the supported types
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectImplements tests whether an instance is an implementation of type T
func ExpectImplements[T any](t *testing.T, instance any, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		var expected T
		t.Errorf("%simplementation test failed: type %T does not implement %T", id(tags...), instance, expected)
		return false
	}
	return true
}
