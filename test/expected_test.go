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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/palgen/test"
)

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	// a nil error is a success, per the usual meaning of a nil error
	var err error
	test.ExpectSuccess(t, err)
}

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("deliberate"))
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 208, 16+12*16)
	test.ExpectEquality(t, "gpl", "gpl")
	test.ExpectEquality(t, false, !true)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 54, 53)
	test.ExpectInequality(t, "gpl", "tga")
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 0.2, 0.1995, 0.05)
	test.ExpectApproximate(t, 99, 100, 0.05)
	test.ExpectApproximate(t, -99, -100, 0.05)
}

func TestExpectImplements(t *testing.T) {
	w := &test.Writer{}
	test.ExpectImplements[io.Writer](t, w)
}
