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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter captures the usage text produced by the flag package so that it
// can be reshaped before presentation.
type helpWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// help writes the collected usage text to output, amended with the mode path
// banner, the list of available sub-modes and any additional help.
func (hw *helpWriter) help(output io.Writer, banner string, modes []string, longHelp string) {
	captured := string(hw.buffer)

	// with no flags and no sub-modes the flag package produces a bare usage
	// banner and there is nothing worth amending
	if captured == "Usage:\n" && len(modes) == 0 {
		if banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	lines := strings.Split(captured, "\n")

	if banner == "" {
		fmt.Fprintln(output, lines[0])
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	}

	// the flag summary, as produced by the flag package
	if len(lines) > 1 {
		io.WriteString(output, strings.Join(lines[1:], "\n"))
	}

	if len(modes) > 0 {
		// a blank line separates the flag summary from the sub-mode list,
		// when there is a flag summary to separate from
		if len(lines) > 2 {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(modes, ", "))
		fmt.Fprintf(output, "    default: %s\n", modes[0])
	}

	if longHelp != "" {
		fmt.Fprintf(output, "\n%s\n", longHelp)
	}
}
