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
	"strings"
)

// JoinPath joins the supplied path elements and roots them in the resources
// base path. Directories along the way are created as required; the file at
// the end of the path is never touched.
//
// The base path depends on the build and the environment: the portable
// directory when the portable marker file is present, otherwise the path
// returned by resourcePath() for the build type.
func JoinPath(path ...string) (string, error) {
	base := portableBasePath()
	if base == "" {
		var err error
		base, err = resourcePath()
		if err != nil {
			return "", err
		}
	}

	p := filepath.Join(path...)

	// callers sometimes hand back a path from an earlier JoinPath. the base
	// path should not be applied twice
	if !strings.HasPrefix(p, base) {
		p = filepath.Join(base, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
