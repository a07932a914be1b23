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

// Package source defines the palette sources known to the generator. A
// source is a declarative record saying which voltage table to use, how the
// hue wheel is divided and how large the finished palette is allowed to be.
//
// The canonical sources follow the consolidated naming scheme, in which a
// composite source is named for the length of its voltage table. The older
// naming scheme, in which a source was named for its table length and a hue
// density multiplier, is supported through an additional set of records. See
// the legacy.go file for those.
package source

import (
	"fmt"
	"math"

	"github.com/jetsetilly/palgen/voltage"
)

// Strategy describes how a source arranges the colours of the palette.
type Strategy int

// Valid strategies. The NES wheel brackets its greyscale with pure black and
// pure white entries and walks the hue wheel in degree steps. The composite
// wheel divides the wheel into a number of equally spaced hues with an
// optional phase offset.
const (
	NESWheel Strategy = iota
	CompositeWheel
)

func (strat Strategy) String() string {
	switch strat {
	case NESWheel:
		return "NES wheel"
	case CompositeWheel:
		return "composite wheel"
	}
	return "unknown"
}

// Source is the configuration record for a single palette source. Records
// are declarative. Nothing about the generation of a palette depends on
// anything other than the fields of the record.
type Source struct {
	// name of the source. used for lookup and as the base name of any
	// generated files
	Name string

	// the name used in the header of GPL files
	DisplayName string

	// the voltage table bound to this source. a zero-length table is an
	// invalid binding and will be refused by the generator
	Table voltage.Table

	Strategy Strategy

	// NESWheel sources. hue step and first hue in degrees
	HueStep   int
	HueOffset int

	// CompositeWheel sources. number of hues in the wheel and the phase
	// offset in radians applied to every hue
	NumHues     int
	PhaseOffset float64

	// whether the greyscale is bracketed by pure black and pure white
	BlackWhiteEndpoints bool

	// generation is capped at this many colours
	MaxColours int

	// legacy sources use the older GPL file revision, which has no column
	// count in the header
	Legacy bool
}

func (src Source) String() string {
	return fmt.Sprintf("%s (%d taps, %d hues)", src.Name, src.Table.Length(), src.Hues())
}

// Hues returns the number of hues the source's wheel is divided into.
func (src Source) Hues() int {
	switch src.Strategy {
	case NESWheel:
		return 360 / src.HueStep
	case CompositeWheel:
		return src.NumHues
	}
	return 0
}

// NumColours returns the number of colours a generation run of the source
// will produce.
func (src Source) NumColours() int {
	n := src.Table.Length()
	if src.BlackWhiteEndpoints {
		n += 2
	}
	return n + src.Hues()*src.Table.Length()
}

// The canonical sources.
var ApproxNes Source
var ApproxNesRotated Source
var Composite08 Source
var Composite16 Source
var Composite16Rotated Source
var Composite32 Source

// List of canonical source names in presentation order.
var List = []string{
	"approx_nes",
	"approx_nes_rotated",
	"composite_08",
	"composite_16",
	"composite_16_rotated",
	"composite_32",
}

// registry of all sources, canonical and legacy, keyed by name.
var sources map[string]Source

// Lookup returns the record for the named source. Canonical and legacy
// names are both recognised.
func Lookup(name string) (Source, error) {
	if src, ok := sources[name]; ok {
		return src, nil
	}
	return Source{}, fmt.Errorf("source: unrecognised palette source (%s)", name)
}

func init() {
	ApproxNes = Source{
		Name:                "approx_nes",
		DisplayName:         "Approximate NES",
		Table:               voltage.ApproxNES,
		Strategy:            NESWheel,
		HueStep:             30,
		HueOffset:           0,
		BlackWhiteEndpoints: true,
		MaxColours:          64,
	}

	ApproxNesRotated = ApproxNes
	ApproxNesRotated.Name = "approx_nes_rotated"
	ApproxNesRotated.DisplayName = "Approximate NES Rotated"
	ApproxNesRotated.HueOffset = 15

	Composite08 = Source{
		Name:        "composite_08",
		DisplayName: "Composite 08",
		Table:       voltage.Build(voltage.StepForLength(8), 8),
		Strategy:    CompositeWheel,
		NumHues:     24,
		MaxColours:  256,
	}

	Composite16 = Source{
		Name:        "composite_16",
		DisplayName: "Composite 16",
		Table:       voltage.Build(voltage.StepForLength(16), 16),
		Strategy:    CompositeWheel,
		NumHues:     12,
		MaxColours:  256,
	}

	Composite16Rotated = Composite16
	Composite16Rotated.Name = "composite_16_rotated"
	Composite16Rotated.DisplayName = "Composite 16 Rotated"
	Composite16Rotated.PhaseOffset = math.Pi / 12

	Composite32 = Source{
		Name:        "composite_32",
		DisplayName: "Composite 32",
		Table:       voltage.Build(voltage.StepForLength(32), 32),
		Strategy:    CompositeWheel,
		NumHues:     24,
		MaxColours:  1024,
	}

	sources = make(map[string]Source)
	for _, src := range []Source{
		ApproxNes, ApproxNesRotated,
		Composite08, Composite16, Composite16Rotated, Composite32,
	} {
		sources[src.Name] = src
	}

	addLegacySources()
}
