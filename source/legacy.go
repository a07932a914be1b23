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

package source

import "github.com/jetsetilly/palgen/voltage"

// The legacy naming scheme named a composite source for its table length and
// a hue density multiplier, with 1X corresponding to a 30 degree hue step.
// The multiplier in the name converts to a step and the step converts to a
// hue count. All legacy steps divide 360 so the legacy sources sit on the
// composite wheel strategy without further special casing.
//
// Legacy sources are looked up by name in the usual way but do not appear in
// the canonical List.

// LegacyList of legacy source names in presentation order.
var LegacyList = []string{
	"composite_06_0p75x",
	"composite_06_3x",
	"composite_12_1p50x",
	"composite_12_6x",
	"composite_18_1x",
	"composite_24_0p75x",
	"composite_24_3x",
	"composite_36_2x",
	"composite_48_1p50x",
}

func addLegacySources() {
	type legacy struct {
		name        string
		displayName string
		length      int
		hueStep     int
		maxColours  int
	}

	for _, leg := range []legacy{
		{"composite_06_0p75x", "Composite 06 0.75X", 6, 40, 64},
		{"composite_06_3x", "Composite 06 3X", 6, 10, 256},
		{"composite_12_1p50x", "Composite 12 1.5X", 12, 20, 256},
		{"composite_12_6x", "Composite 12 6X", 12, 5, 1024},
		{"composite_18_1x", "Composite 18 1X", 18, 30, 256},
		{"composite_24_0p75x", "Composite 24 0.75X", 24, 40, 256},
		{"composite_24_3x", "Composite 24 3X", 24, 10, 1024},
		{"composite_36_2x", "Composite 36 2X", 36, 15, 1024},
		{"composite_48_1p50x", "Composite 48 1.5X", 48, 20, 1024},
	} {
		sources[leg.name] = Source{
			Name:        leg.name,
			DisplayName: leg.displayName,
			Table:       voltage.Build(voltage.StepForLength(leg.length), leg.length),
			Strategy:    CompositeWheel,
			NumHues:     360 / leg.hueStep,
			MaxColours:  leg.maxColours,
			Legacy:      true,
		}
	}
}
