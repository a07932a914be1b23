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

// Permission gates the creation of new log entries. The environment asking
// for the log entry supplies the Permission, letting callers silence logging
// wholesale without touching every Log() call site.
type Permission interface {
	AllowLogging() bool
}

type alwaysAllow struct{}

func (_ alwaysAllow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when a log entry should always be made.
var Allow Permission = alwaysAllow{}
