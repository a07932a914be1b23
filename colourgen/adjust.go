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

package colourgen

import "math"

// Adjust specifies a colour adjustment applied in YIQ space during
// generation. The adjustment affects greys and hue colours. Pure black and
// pure white endpoints are definitional and are never adjusted.
//
// The zero value of the type is not useful. Use NewAdjust() for the identity
// adjustment.
type Adjust struct {
	// Brightness shifts the luma channel. 1.0 leaves luma unchanged, values
	// above raise it and values below lower it
	Brightness float64

	// Contrast scales the luma channel. 1.0 leaves luma unchanged
	Contrast float64

	// Saturation scales the chroma amplitude. 1.0 leaves chroma unchanged
	// and 0.0 reduces every colour to its grey
	Saturation float64

	// Hue rotates the chroma plane. the value is in degrees and 0.0 leaves
	// hues unchanged
	Hue float64
}

// NewAdjust is the preferred method of initialisation for the Adjust type.
// The returned value is the identity adjustment.
func NewAdjust() Adjust {
	return Adjust{
		Brightness: 1.0,
		Contrast:   1.0,
		Saturation: 1.0,
		Hue:        0.0,
	}
}

// IsIdentity returns true if the adjustment leaves every colour unchanged.
func (adj Adjust) IsIdentity() bool {
	return adj.Brightness == 1.0 && adj.Contrast == 1.0 && adj.Saturation == 1.0 && adj.Hue == 0.0
}

// yiq applies the adjustment to a point in YIQ space. Contrast scales luma
// before the brightness shift is added. Saturation scales both chroma
// channels and the hue rotation is applied last:
//
//	[ I' ]   [ cos(hue)  -sin(hue) ] [ I ]
//	[ Q' ] = [ sin(hue)   cos(hue) ] [ Q ]
//
// The identity adjustment returns bit-identical values for every input.
// Multiplying by 1.0 and adding 0.0 are exact in IEEE 754 arithmetic, as
// are sin(0) and cos(0).
func (adj Adjust) yiq(y, i, q float64) (float64, float64, float64) {
	y = (y * adj.Contrast) + (adj.Brightness - 1.0)

	i *= adj.Saturation
	q *= adj.Saturation

	rot := adj.Hue * math.Pi / 180
	ni := (i * math.Cos(rot)) - (q * math.Sin(rot))
	nq := (i * math.Sin(rot)) + (q * math.Cos(rot))

	return y, ni, nq
}
