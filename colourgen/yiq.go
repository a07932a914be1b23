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

import "image/color"

// quantise converts a normalised channel value to its 8bit equivalent. The
// value is rounded half-up and clamped to the valid channel range. Values
// outside the range 0.0 to 1.0 are legal inputs, the YIQ colour space being
// larger than the RGB cube, and simply clamp.
func quantise(v float64) uint8 {
	n := int(v*255 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// yiq converts a point in YIQ colour space to an RGB colour. The conversion
// matrix uses the original NTSC 1953 colorimetry values:
//
//	https://en.wikipedia.org/wiki/YIQ
func yiq(y, i, q float64) color.RGBA {
	return color.RGBA{
		R: quantise(y + (0.956 * i) + (0.619 * q)),
		G: quantise(y - (0.272 * i) - (0.647 * q)),
		B: quantise(y - (1.106 * i) + (1.703 * q)),
		A: 255,
	}
}
