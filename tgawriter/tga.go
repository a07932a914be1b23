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

// Package tgawriter writes a generated palette to disk as a Truevision TGA
// image. The image is a single row of pixels, one pixel per colour, in an
// uncompressed 24bpp true-colour file. TGA was chosen over more capable
// formats because it is trivially loaded as a texture by the tools the
// palettes are intended for.
package tgawriter

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/logger"
)

// a TGA header is always 18 bytes. none of the optional fields are used.
const headerLength = 18

// palettes at or over this size have no image tier and cannot be written.
const maxColours = 1024

// imageWidth returns the smallest image tier that fits the palette. the
// tiers keep the image dimensions texture-friendly whatever the palette size
func imageWidth(numColours int) int {
	switch {
	case numColours <= 64:
		return 64
	case numColours <= 256:
		return 256
	}
	return 1024
}

// Write writes the colour list to output as a TGA image. The image is one
// pixel high and as wide as the smallest tier (64, 256 or 1024 pixels) that
// fits the palette. Pixels beyond the palette are black.
//
// Palettes of 1024 colours or more are refused.
func Write(output io.Writer, colours *colourgen.ColourList) error {
	if colours.Len() >= maxColours {
		return fmt.Errorf("tgawriter: too many colours for a TGA palette (%d)", colours.Len())
	}

	width := imageWidth(colours.Len())

	data := make([]byte, 0, headerLength+width*3)

	data = append(data,
		0, // no image ID field
		0, // no colour map
		2, // uncompressed true-colour image
	)
	data = append(data, 0, 0, 0, 0, 0) // colour map specification (unused)

	data = binary.LittleEndian.AppendUint16(data, 0)             // x origin
	data = binary.LittleEndian.AppendUint16(data, 0)             // y origin
	data = binary.LittleEndian.AppendUint16(data, uint16(width)) // image width
	data = binary.LittleEndian.AppendUint16(data, 1)             // image height

	data = append(data,
		24,   // bits per pixel
		0x20, // image descriptor. top-left pixel order
	)

	// pixel data is in blue-green-red order
	for _, col := range colours.Colours() {
		data = append(data, col.B, col.G, col.R)
	}

	// pad the row to the tier width
	for i := colours.Len(); i < width; i++ {
		data = append(data, 0, 0, 0)
	}

	if _, err := output.Write(data); err != nil {
		return fmt.Errorf("tgawriter: %w", err)
	}

	return nil
}

// WriteFile writes the colour list to the named file as a TGA image.
func WriteFile(filename string, colours *colourgen.ColourList) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("tgawriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = fmt.Errorf("tgawriter: %w", err)
		}
	}()

	logger.Logf(logger.Allow, "tgawriter", "writing palette to %s", filename)

	return Write(f, colours)
}
