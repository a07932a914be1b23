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

package gplwriter_test

import (
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/gplwriter"
	"github.com/jetsetilly/palgen/source"
	"github.com/jetsetilly/palgen/test"
)

// build a small colour list by hand. colours chosen to cover all three
// padding widths of the %3d fields
func testColours(t *testing.T) *colourgen.ColourList {
	t.Helper()

	lst := colourgen.NewColourList(3)
	test.DemandSuccess(t, lst.Add(color.RGBA{R: 0, G: 0, B: 0, A: 255}))
	test.DemandSuccess(t, lst.Add(color.RGBA{R: 51, G: 51, B: 51, A: 255}))
	test.DemandSuccess(t, lst.Add(color.RGBA{R: 255, G: 128, B: 7, A: 255}))
	return lst
}

func TestFormat(t *testing.T) {
	lst := testColours(t)
	src := source.Source{DisplayName: "Test"}

	w := &strings.Builder{}
	test.ExpectSuccess(t, gplwriter.Write(w, lst, src))

	expected := "GIMP Palette\n" +
		"Name: Test\n" +
		"Columns: 16\n" +
		"\n" +
		"  0   0   0\t(0, 0, 0)\n" +
		" 51  51  51\t(51, 51, 51)\n" +
		"255 128   7\t(255, 128, 7)\n"

	test.ExpectEquality(t, w.String(), expected)
}

// legacy sources omit the Columns line
func TestLegacyFormat(t *testing.T) {
	lst := testColours(t)
	src := source.Source{DisplayName: "Test", Legacy: true}

	w := &strings.Builder{}
	test.ExpectSuccess(t, gplwriter.Write(w, lst, src))

	expected := "GIMP Palette\n" +
		"Name: Test\n" +
		"\n" +
		"  0   0   0\t(0, 0, 0)\n" +
		" 51  51  51\t(51, 51, 51)\n" +
		"255 128   7\t(255, 128, 7)\n"

	test.ExpectEquality(t, w.String(), expected)
}

// the palette file re-parses to the colour list it was written from, for
// every source
func TestReparse(t *testing.T) {
	for _, name := range append(source.List, source.LegacyList...) {
		src, err := source.Lookup(name)
		test.DemandSuccess(t, err, name)

		gen, err := colourgen.NewColourGen(src)
		test.DemandSuccess(t, err, name)
		test.DemandSuccess(t, gen.Generate(), name)

		w := &strings.Builder{}
		test.DemandSuccess(t, gplwriter.Write(w, gen.Colours(), src), name)

		lines := strings.Split(w.String(), "\n")

		// find the blank line that ends the header
		row := 0
		for lines[row] != "" {
			row++
		}
		row++

		colours := gen.Colours().Colours()
		test.ExpectEquality(t, len(lines)-row-1, len(colours), name)

		for i, col := range colours {
			flds := strings.Fields(lines[row+i])
			r, err := strconv.Atoi(flds[0])
			test.DemandSuccess(t, err, name)
			g, err := strconv.Atoi(flds[1])
			test.DemandSuccess(t, err, name)
			b, err := strconv.Atoi(flds[2])
			test.DemandSuccess(t, err, name)

			test.ExpectEquality(t, uint8(r), col.R, name, i)
			test.ExpectEquality(t, uint8(g), col.G, name, i)
			test.ExpectEquality(t, uint8(b), col.B, name, i)
		}
	}
}

func TestIdempotence(t *testing.T) {
	lst := testColours(t)
	src := source.Source{DisplayName: "Test"}

	a := &strings.Builder{}
	test.ExpectSuccess(t, gplwriter.Write(a, lst, src))

	b := &strings.Builder{}
	test.ExpectSuccess(t, gplwriter.Write(b, lst, src))

	test.ExpectEquality(t, a.String(), b.String())
}
