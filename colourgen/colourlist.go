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

import (
	"fmt"
	"image/color"
)

// ColourList accumulates the colours of a palette in generation order. The
// list is bounded. Once the maximum size has been reached further additions
// are refused.
//
// The list belongs to the generation step. Once generation has finished the
// list should be treated as read-only.
type ColourList struct {
	colours []color.RGBA
	max     int
}

// NewColourList is the preferred method of initialisation for the ColourList
// type.
func NewColourList(max int) *ColourList {
	return &ColourList{
		colours: make([]color.RGBA, 0, max),
		max:     max,
	}
}

// Add appends a colour to the list. If the list is already at its maximum
// size the colour is not added and an error is returned. Adding never
// panics and never reallocates beyond the maximum.
func (lst *ColourList) Add(col color.RGBA) error {
	if len(lst.colours) >= lst.max {
		return fmt.Errorf("colourgen: colour list is full (maximum of %d colours)", lst.max)
	}
	lst.colours = append(lst.colours, col)
	return nil
}

// Len returns the number of colours in the list.
func (lst *ColourList) Len() int {
	return len(lst.colours)
}

// Colours returns the colours in generation order. The returned slice is the
// list's backing store and must be treated as read-only.
func (lst *ColourList) Colours() []color.RGBA {
	return lst.colours
}
