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

package test

import "strings"

// Writer captures output for comparison with an expected string. It
// implements the io.Writer interface.
type Writer struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.b.Write(p)
}

// Clear forgets everything written so far.
func (tw *Writer) Clear() {
	tw.b.Reset()
}

// Compare the captured output against the expected string.
func (tw *Writer) Compare(s string) bool {
	return s == tw.b.String()
}

// String implements the fmt.Stringer interface.
func (tw *Writer) String() string {
	return tw.b.String()
}
