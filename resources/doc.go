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

// Package resources contains functions to prepare paths for Palgen
// resources.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// JoinPath() handles the inclusion of the correct base path. The base path
// depends on how the binary was built.
//
// For builds with the "release" build tag, the path returned by JoinPath()
// is rooted in the user's configuration directory. On modern Linux systems
// the full path would be something like:
//
//	/home/user/.config/palgen/
//
// For non-"release" builds, the correct path is rooted in the current
// working directory:
//
//	.palgen
//
// The package does this because during development it is more convenient to
// have the config directory close to hand. For release binaries however, the
// config directory should be somewhere the end-user expects.
//
// # portable.txt
//
// An exception to the above rules is when an empty file named 'portable.txt'
// is in the same directory as the program binary. When the file exists the
// resources are saved in a directory named 'Palgen_UserData' in the same
// directory as the program binary.
package resources
