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

// Package digest produces hashes of generated palettes. The hash can be used
// to compare the output of subsequent generation runs. If a new hash differs
// from a previously recorded value then something has changed. We use this as
// the basis of the regression tests.
package digest

// Digest implementations return a hash of the data they have been fed.
// Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
