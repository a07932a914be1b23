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

package voltage_test

import (
	"math"
	"testing"

	"github.com/go-test/deep"
	"github.com/jetsetilly/palgen/test"
	"github.com/jetsetilly/palgen/voltage"
)

// every table length used by a palette source, derived and legacy
var tableLengths = []int{6, 8, 12, 16, 18, 24, 32, 36, 48}

func TestBuildSymmetry(t *testing.T) {
	for _, length := range tableLengths {
		tab := voltage.Build(voltage.StepForLength(length), length)
		test.DemandEquality(t, tab.Length(), length)

		// a tap and its opposite sum to exactly 1.0. the mirrored half of
		// the table is constructed by subtraction from 1.0 so the equality
		// is exact even in floating point
		for k := 0; k < length/2; k++ {
			test.ExpectEquality(t, tab.Luma[k]+tab.Luma[length-1-k], 1.0,
				"length", length, "tap", k)
			test.ExpectEquality(t, tab.Saturation[k], tab.Saturation[length-1-k],
				"length", length, "tap", k)
		}

		// luma climbs monotonically through the whole table
		for k := 1; k < length; k++ {
			test.ExpectSuccess(t, tab.Luma[k] > tab.Luma[k-1], "length", length, "tap", k)
		}
	}
}

func TestBuildValues(t *testing.T) {
	// a derived table of length 16 uses a step of 1/18
	tab := voltage.Build(voltage.StepForLength(16), 16)
	test.ExpectEquality(t, tab.Luma[0], 1.0/18)
	test.ExpectEquality(t, tab.Luma[7], 8.0/18)
	test.ExpectEquality(t, tab.Luma[15], 1.0-1.0/18)

	// saturation peaks either side of the middle of the table
	test.ExpectEquality(t, tab.Saturation[7], 8.0/18)
	test.ExpectEquality(t, tab.Saturation[8], 8.0/18)
	test.ExpectEquality(t, tab.Saturation[15], 1.0/18)
}

func TestStepForLength(t *testing.T) {
	test.ExpectEquality(t, voltage.StepForLength(8), 1.0/10)
	test.ExpectEquality(t, voltage.StepForLength(16), 1.0/18)
	test.ExpectEquality(t, voltage.StepForLength(32), 1.0/34)
}

func TestReferenceTables(t *testing.T) {
	if diff := deep.Equal(voltage.NES.Luma, []float64{0.1995, 0.342, 0.654, 0.8575}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(voltage.NES.Saturation, []float64{0.1995, 0.342, 0.346, 0.1425}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(voltage.ApproxNES.Luma, []float64{0.2, 0.35, 0.65, 0.85}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(voltage.ApproxNES.Saturation, []float64{0.2, 0.35, 0.35, 0.15}); diff != nil {
		t.Error(diff)
	}
}

// the approximate table should never stray far from the measurements it is
// standing in for
func TestApproximationCloseness(t *testing.T) {
	test.DemandEquality(t, voltage.ApproxNES.Length(), voltage.NES.Length())
	for k := 0; k < voltage.NES.Length(); k++ {
		test.ExpectSuccess(t, math.Abs(voltage.ApproxNES.Luma[k]-voltage.NES.Luma[k]) <= 0.01, "tap", k)
		test.ExpectSuccess(t, math.Abs(voltage.ApproxNES.Saturation[k]-voltage.NES.Saturation[k]) <= 0.01, "tap", k)
	}
}
