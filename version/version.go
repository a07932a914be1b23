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

// Package version identifies the build of the program.
package version

import "runtime/debug"

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Palgen"

// number is set at build time through the linker. an empty value means the
// build was not made through the makefile
var number string

// the strings returned by the Version() function, decided during init().
var version string
var revision string

// Version returns the version and vcs revision of the build, and whether the
// build is a numbered release.
//
// A version of "unreleased" is a manual build from a source tree under
// version control. A version of "local" means there is no version number and
// no vcs information at all, which is what "go run ." produces.
func Version() (string, string, bool) {
	return version, revision, version == number && number != ""
}

func init() {
	var vcs bool

	revision = "no revision information"

	if info, ok := debug.ReadBuildInfo(); ok {
		var haveRevision bool
		var modified bool

		for _, set := range info.Settings {
			switch set.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				if set.Value != "" {
					revision = set.Value
					haveRevision = true
				}
			case "vcs.modified":
				modified = set.Value == "true"
			}
		}

		if haveRevision && modified {
			revision += "+dirty"
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
