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

package resources

import (
	"os"
	"path/filepath"
)

// the presence of the marker file next to the program binary switches the
// program to portable mode. resources are then kept in the portablePath
// directory, also next to the binary.
const portableMarker = "portable.txt"
const portablePath = "Palgen_UserData"

// portableBasePath returns the base path for resources when the program is
// running in portable mode. The empty string indicates that portable mode is
// not active.
func portableBasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	d := filepath.Dir(exe)
	if _, err := os.Stat(filepath.Join(d, portableMarker)); err != nil {
		return ""
	}

	return filepath.Join(d, portablePath)
}
