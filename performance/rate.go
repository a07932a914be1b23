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

package performance

// CalcRate takes the number of palettes generated, the number of colours in
// each palette, and the duration of the measurement (in seconds). It returns
// the generation rate in palettes per second and in colours per second.
func CalcRate(numPalettes int, numColours int, duration float64) (palettes float64, colours float64) {
	palettes = float64(numPalettes) / duration
	colours = palettes * float64(numColours)
	return palettes, colours
}
