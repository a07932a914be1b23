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

// Package gplwriter writes a generated palette to disk in the GIMP palette
// format. The format is plain text and is understood by GIMP, Aseprite and
// most other pixel editors.
package gplwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/logger"
	"github.com/jetsetilly/palgen/source"
)

// Write writes the colour list to output in the GIMP palette format. The
// source record supplies the palette name.
//
// The Columns line is a later addition to the header. Palettes for legacy
// sources reproduce the old files byte for byte and so omit it.
func Write(output io.Writer, colours *colourgen.ColourList, src source.Source) error {
	s := strings.Builder{}

	s.WriteString("GIMP Palette\n")
	s.WriteString(fmt.Sprintf("Name: %s\n", src.DisplayName))
	if !src.Legacy {
		s.WriteString("Columns: 16\n")
	}
	s.WriteString("\n")

	for _, col := range colours.Colours() {
		s.WriteString(fmt.Sprintf("%3d %3d %3d\t(%d, %d, %d)\n",
			col.R, col.G, col.B, col.R, col.G, col.B))
	}

	if _, err := io.WriteString(output, s.String()); err != nil {
		return fmt.Errorf("gplwriter: %w", err)
	}

	return nil
}

// WriteFile writes the colour list to the named file in the GIMP palette
// format.
func WriteFile(filename string, colours *colourgen.ColourList, src source.Source) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("gplwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = fmt.Errorf("gplwriter: %w", err)
		}
	}()

	logger.Logf(logger.Allow, "gplwriter", "writing palette to %s", filename)

	return Write(f, colours, src)
}
