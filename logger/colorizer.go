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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// continuation lines are assumed to be supporting detail for the first line
// of the write and are dimmed so that the eye can find the entries
var continuationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Faint(true)

// Colorizer applies basic colouring rules to logging output.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")
	if len(l) == 0 {
		return 0, nil
	}

	m, err := c.out.Write([]byte(l[0] + "\n"))
	if err != nil {
		return n + m, err
	}
	n += m

	for _, s := range l[1:] {
		m, err := c.out.Write([]byte(continuationStyle.Render(s) + "\n"))
		if err != nil {
			return n + m, err
		}
		n += m
	}

	return n, nil
}
