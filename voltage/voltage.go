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

// Package voltage defines the voltage tables that drive palette generation.
// Each table describes the composite video signal at a number of taps. The
// luma value of a tap is the DC level of the signal and the saturation value
// is the amplitude of the chroma component relative to the colour burst.
//
// Tables are either derived with the Build() function or, in the case of the
// NES console, reproduced from published measurements.
package voltage

// Table is a pair of parallel voltage sequences, one entry per tap. Values
// are normalised to the range 0.0 to 1.0. Tables should be treated as
// read-only once built.
type Table struct {
	Luma       []float64
	Saturation []float64
}

// Length returns the number of taps in the table.
func (tab Table) Length() int {
	return len(tab.Luma)
}

// StepForLength returns the derivation step used for composite tables of the
// given length. The step leaves headroom between the brightest tap and pure
// white, and between the darkest tap and pure black.
func StepForLength(length int) float64 {
	return 1.0 / float64(length+2)
}

// Build derives a voltage table of the required length, which must be even.
//
// Luma levels climb in equal steps through the lower half of the table and
// mirror through the upper half, meaning that a tap and its opposite always
// sum to exactly 1.0. Saturation levels repeat the lower luma half in both
// halves of the table, peaking either side of the middle.
func Build(step float64, length int) Table {
	tab := Table{
		Luma:       make([]float64, length),
		Saturation: make([]float64, length),
	}

	for k := 0; k < length/2; k++ {
		tab.Luma[k] = float64(k+1) * step
		tab.Luma[length-1-k] = 1.0 - tab.Luma[k]
		tab.Saturation[k] = tab.Luma[k]
		tab.Saturation[length-1-k] = tab.Saturation[k]
	}

	return tab
}

// NES is the measured voltage table for the NES PPU. Values taken from the
// NTSC video description on the nesdev wiki:
//
//	https://www.nesdev.org/wiki/NTSC_video
//
// Being measurements, these values are not symmetric and do not obey the
// summing property of tables made with Build().
var NES = Table{
	Luma:       []float64{0.1995, 0.342, 0.654, 0.8575},
	Saturation: []float64{0.1995, 0.342, 0.346, 0.1425},
}

// ApproxNES rounds the measured NES voltages to friendlier values. Every
// entry is within 0.01 of the corresponding measurement.
var ApproxNES = Table{
	Luma:       []float64{0.2, 0.35, 0.65, 0.85},
	Saturation: []float64{0.2, 0.35, 0.35, 0.15},
}
