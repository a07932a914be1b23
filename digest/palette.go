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

package digest

import (
	"fmt"
	"hash"
	"image/color"

	"github.com/cespare/xxhash"
)

// Palette is an implementation of the colourgen.ColourTrigger interface. It
// maintains a running hash over the RGB values of every colour it is offered,
// in generation order. It does not store the colours themselves.
//
// Note that xxhash is not a cryptographic hash but this is not a
// cryptographic task.
type Palette struct {
	digest hash.Hash64
}

// NewPalette is the preferred method of initialisation for the Palette type.
func NewPalette() *Palette {
	return &Palette{
		digest: xxhash.New(),
	}
}

// NewColour implements the colourgen.ColourTrigger interface. The alpha
// channel takes no part in the hash.
func (dig *Palette) NewColour(col color.RGBA) error {
	_, err := dig.digest.Write([]byte{col.R, col.G, col.B})
	if err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	return nil
}

// Hash implements the digest.Digest interface.
func (dig *Palette) Hash() string {
	return fmt.Sprintf("%016x", dig.digest.Sum64())
}

// ResetDigest implements the digest.Digest interface.
func (dig *Palette) ResetDigest() {
	dig.digest.Reset()
}
