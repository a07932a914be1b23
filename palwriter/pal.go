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

// Package palwriter writes a generated palette to disk as raw RGB triples,
// one byte per channel and nothing else. The format has no header so the
// consumer must know the palette size. Useful for feeding palettes to tools
// that expect a plain binary blob.
package palwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/logger"
)

// Write writes the colour list to output as raw red-green-blue triples in
// generation order.
func Write(output io.Writer, colours *colourgen.ColourList) error {
	data := make([]byte, 0, colours.Len()*3)
	for _, col := range colours.Colours() {
		data = append(data, col.R, col.G, col.B)
	}

	if _, err := output.Write(data); err != nil {
		return fmt.Errorf("palwriter: %w", err)
	}

	return nil
}

// WriteFile writes the colour list to the named file as raw RGB triples.
func WriteFile(filename string, colours *colourgen.ColourList) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("palwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = fmt.Errorf("palwriter: %w", err)
		}
	}()

	logger.Logf(logger.Allow, "palwriter", "writing palette to %s", filename)

	return Write(f, colours)
}
