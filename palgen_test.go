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

package main

import (
	"testing"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/source"
	"github.com/jetsetilly/palgen/test"
)

func TestResolveSources(t *testing.T) {
	srcs, err := resolveSources([]string{"approx_nes", "composite_16"})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(srcs), 2)
	test.ExpectEquality(t, srcs[0].Name, "approx_nes")
	test.ExpectEquality(t, srcs[1].Name, "composite_16")

	// the word "all" expands to every source, canonical and legacy. the
	// expansion is case insensitive
	srcs, err = resolveSources([]string{"ALL"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(srcs), len(source.List)+len(source.LegacyList))

	_, err = resolveSources([]string{"composite_64"})
	test.ExpectFailure(t, err)
}

func BenchmarkGenerate(b *testing.B) {
	src, err := source.Lookup("composite_32")
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		gen, err := colourgen.NewColourGen(src)
		if err != nil {
			b.Fatal(err)
		}

		err = gen.Generate()
		if err != nil {
			b.Fatal(err)
		}
	}
}
