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

// Package colourgen generates palettes from the voltage tables described by
// a palette source. Colours are created by treating the luma and saturation
// voltage of each table tap as a point in YIQ space and converting to RGB.
//
// Generation is deterministic. The same source record and the same
// adjustment always produce the same sequence of colours.
package colourgen

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jetsetilly/palgen/logger"
	"github.com/jetsetilly/palgen/source"
)

// ColourTrigger implementations are offered every colour generated by a
// ColourGen, in generation order.
type ColourTrigger interface {
	NewColour(col color.RGBA) error
}

// HueWindow restricts which taps of the voltage table a hue is generated
// for. The stock strategies always use the full window. The half windows are
// useful when composing a palette by hand with GenerateHue().
type HueWindow int

// Valid hue windows.
const (
	WindowFull HueWindow = iota
	WindowLowerHalf
	WindowUpperHalf
)

func (win HueWindow) String() string {
	switch win {
	case WindowFull:
		return "full"
	case WindowLowerHalf:
		return "lower half"
	case WindowUpperHalf:
		return "upper half"
	}
	return "unknown"
}

// taps returns the half-open tap range selected by the window.
func (win HueWindow) taps(length int) (int, int) {
	switch win {
	case WindowLowerHalf:
		return 0, length / 2
	case WindowUpperHalf:
		return length / 2, length
	}
	return 0, length
}

// ColourGen is a single palette generation run for a source. Create a new
// instance for a fresh palette.
type ColourGen struct {
	src      source.Source
	adj      Adjust
	colours  *ColourList
	triggers []ColourTrigger
}

// NewColourGen is the preferred method of initialisation for the ColourGen
// type. The source record is validated before anything else. A source with
// no voltage table or an unknown strategy is a configuration error.
func NewColourGen(src source.Source) (*ColourGen, error) {
	if src.Table.Length() == 0 {
		return nil, fmt.Errorf("colourgen: source %s is not bound to a voltage table", src.Name)
	}

	switch src.Strategy {
	case source.NESWheel:
		if src.HueStep <= 0 || 360%src.HueStep != 0 {
			return nil, fmt.Errorf("colourgen: source %s has an invalid hue step (%d)", src.Name, src.HueStep)
		}
	case source.CompositeWheel:
		if src.NumHues <= 0 {
			return nil, fmt.Errorf("colourgen: source %s has an invalid hue count (%d)", src.Name, src.NumHues)
		}
	default:
		return nil, fmt.Errorf("colourgen: source %s has an unknown strategy", src.Name)
	}

	return &ColourGen{
		src:     src,
		adj:     NewAdjust(),
		colours: NewColourList(src.MaxColours),
	}, nil
}

// SetAdjust replaces the colour adjustment used during generation. It has no
// effect on colours that have already been generated.
func (gen *ColourGen) SetAdjust(adj Adjust) {
	gen.adj = adj
}

// AddColourTrigger registers a trigger to be offered every subsequent
// colour.
func (gen *ColourGen) AddColourTrigger(trig ColourTrigger) {
	gen.triggers = append(gen.triggers, trig)
}

// add appends a colour to the list and offers it to every registered
// trigger. a full colour list is logged and the colour dropped. it is not an
// error; generation carries on with the colours that fit. errors from a
// trigger do propagate
func (gen *ColourGen) add(col color.RGBA) error {
	if err := gen.colours.Add(col); err != nil {
		logger.Log(logger.Allow, "colourgen", err)
		return nil
	}

	for _, trig := range gen.triggers {
		if err := trig.NewColour(col); err != nil {
			return fmt.Errorf("colourgen: %w", err)
		}
	}

	return nil
}

// AddBlack appends a pure black entry to the palette. Endpoint entries are
// definitional and bypass the colour adjustment.
func (gen *ColourGen) AddBlack() error {
	return gen.add(color.RGBA{A: 255})
}

// AddWhite appends a pure white entry to the palette. Endpoint entries are
// definitional and bypass the colour adjustment.
func (gen *ColourGen) AddWhite() error {
	return gen.add(color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// AddGreys appends one grey entry for every tap of the voltage table, in
// table order. A grey is the luma voltage of the tap with no chroma.
func (gen *ColourGen) AddGreys() error {
	for k := 0; k < gen.src.Table.Length(); k++ {
		y, i, q := gen.adj.yiq(gen.src.Table.Luma[k], 0, 0)
		if err := gen.add(yiq(y, i, q)); err != nil {
			return err
		}
	}
	return nil
}

// GenerateHue appends the colours for a single hue, one colour per tap
// selected by the window. The hue is in degrees and must be in the range 0
// to 359.
func (gen *ColourGen) GenerateHue(hue int, window HueWindow) error {
	if hue < 0 || hue >= 360 {
		return fmt.Errorf("colourgen: hue out of range (%d)", hue)
	}
	return gen.generateAngle(2*math.Pi*float64(hue)/360, window)
}

// generateAngle appends one colour per selected tap for the hue angle m, in
// radians. the saturation voltage of the tap is the amplitude of the chroma
// vector and the angle is its direction
func (gen *ColourGen) generateAngle(m float64, window HueWindow) error {
	from, to := window.taps(gen.src.Table.Length())
	for k := from; k < to; k++ {
		i := gen.src.Table.Saturation[k] * math.Cos(m)
		q := gen.src.Table.Saturation[k] * math.Sin(m)
		y, i, q := gen.adj.yiq(gen.src.Table.Luma[k], i, q)
		if err := gen.add(yiq(y, i, q)); err != nil {
			return err
		}
	}
	return nil
}

// Generate runs the source's strategy from start to finish.
//
// The NES wheel brackets the greyscale with pure black and white and then
// walks the hue wheel in degree steps, wrapping at 360. The composite wheel
// generates the greyscale and then divides the wheel into equally spaced
// hues, offset by the source's phase.
func (gen *ColourGen) Generate() error {
	switch gen.src.Strategy {
	case source.NESWheel:
		if gen.src.BlackWhiteEndpoints {
			if err := gen.AddBlack(); err != nil {
				return err
			}
		}
		if err := gen.AddGreys(); err != nil {
			return err
		}
		if gen.src.BlackWhiteEndpoints {
			if err := gen.AddWhite(); err != nil {
				return err
			}
		}

		hue := gen.src.HueOffset
		for h := 0; h < gen.src.Hues(); h++ {
			if err := gen.GenerateHue(hue, WindowFull); err != nil {
				return err
			}
			hue = (hue + gen.src.HueStep) % 360
		}

	case source.CompositeWheel:
		if err := gen.AddGreys(); err != nil {
			return err
		}

		for h := 0; h < gen.src.NumHues; h++ {
			m := 2*math.Pi*float64(h)/float64(gen.src.NumHues) + gen.src.PhaseOffset
			if err := gen.generateAngle(m, WindowFull); err != nil {
				return err
			}
		}
	}

	return nil
}

// Colours returns the generated palette.
func (gen *ColourGen) Colours() *ColourList {
	return gen.colours
}

// NumColours returns the number of colours generated so far.
func (gen *ColourGen) NumColours() int {
	return gen.colours.Len()
}

// Source returns the source record the ColourGen was created with.
func (gen *ColourGen) Source() source.Source {
	return gen.src
}
