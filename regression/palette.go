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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/database"
	"github.com/jetsetilly/palgen/digest"
	"github.com/jetsetilly/palgen/source"
)

const paletteEntryID = "palette"

const (
	paletteFieldSource int = iota
	paletteFieldNumColours
	paletteFieldDigest
	paletteFieldNotes
	numPaletteFields
)

// PaletteRegression regenerates the palette for a source and compares the
// colour count and the colour digest against the recorded values.
type PaletteRegression struct {
	key int

	// name of the palette source. must satisfy source.Lookup()
	Source string

	// the expected number of generated colours
	NumColours int

	// a short annotation stored alongside the entry
	Notes string

	// hash of the generated colour sequence
	digest string
}

// NewPaletteRegression is the preferred method of initialisation for the
// PaletteRegression type.
func NewPaletteRegression(sourceName string, notes string) (*PaletteRegression, error) {
	// fail on unknown sources now rather than waiting for the test to run
	if _, err := source.Lookup(sourceName); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	return &PaletteRegression{
		Source: sourceName,
		Notes:  notes,
	}, nil
}

func deserialisePaletteEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) < numPaletteFields {
		return nil, fmt.Errorf("palette: too few fields")
	}

	reg := &PaletteRegression{}
	reg.Source = fields[paletteFieldSource]
	reg.digest = fields[paletteFieldDigest]

	var err error
	reg.NumColours, err = strconv.Atoi(fields[paletteFieldNumColours])
	if err != nil {
		return nil, fmt.Errorf("palette: invalid colour count field (%s)", fields[paletteFieldNumColours])
	}

	// the notes field is last and may itself contain the field separator
	reg.Notes = strings.Join(fields[paletteFieldNotes:], ",")

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg PaletteRegression) ID() string {
	return paletteEntryID
}

// String implements the database.Entry interface.
func (reg PaletteRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", reg.ID(), reg.Source))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *PaletteRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Source,
		strconv.Itoa(reg.NumColours),
		reg.digest,
		reg.Notes,
	}, nil
}

// SetKey implements the database.Entry interface.
func (reg *PaletteRegression) SetKey(key int) {
	reg.key = key
}

// GetKey implements the database.Entry interface.
func (reg PaletteRegression) GetKey() int {
	return reg.key
}

// CleanUp implements the database.Entry interface. A palette entry owns no
// supporting files.
func (reg PaletteRegression) CleanUp() error {
	return nil
}

// regress implements the Regressor interface.
func (reg *PaletteRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	io.WriteString(output, message)

	src, err := source.Lookup(reg.Source)
	if err != nil {
		return false, fmt.Errorf("palette: %w", err)
	}

	gen, err := colourgen.NewColourGen(src)
	if err != nil {
		return false, fmt.Errorf("palette: %w", err)
	}

	dig := digest.NewPalette()
	gen.AddColourTrigger(dig)

	if err := gen.Generate(); err != nil {
		return false, fmt.Errorf("palette: %w", err)
	}

	if newRegression {
		reg.NumColours = gen.NumColours()
		reg.digest = dig.Hash()
		return true, nil
	}

	if gen.NumColours() != reg.NumColours {
		return false, nil
	}

	return dig.Hash() == reg.digest, nil
}
