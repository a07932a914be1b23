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

// Package logger is the central log facility. Log entries are short, tagged
// and kept in a capped list. The package level functions work with a single
// central logger, which is all most of the application wants, but additional
// Logger instances can be created where isolation is useful, in tests for
// example.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// the number of additional times the entry has been seen after the
	// first
	Repeated int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a capped list of log entries. Entries identical to the most
// recent entry collapse into a repeat count rather than appearing again.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// the index of the first entry not yet written by writeRecent()
	recent int

	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the logger. The detail argument is handled according
// to type. Errors are logged with the Error() string and fmt.Stringer
// implementations with the String() string. Anything else is rendered with
// the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		l.crit.Lock()
		defer l.crit.Unlock()
		l.log(tag, detail)
	}
}

// Logf adds a formatted entry to the logger.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.crit.Lock()
		defer l.crit.Unlock()
		l.log(tag, fmt.Sprintf(detail, args...))
	}
}

// log assumes the critical section is held
func (l *Logger) log(tag string, detail any) {
	var s string
	switch d := detail.(type) {
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	case string:
		s = d
	default:
		s = fmt.Sprintf("%v", detail)
	}

	// newlines break the one-entry-per-line listing format
	tag = strings.ReplaceAll(tag, "\n", "")
	s = strings.ReplaceAll(s, "\n", "")

	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.Tag == tag && e.Detail == s {
			e.Repeated++
			e.Timestamp = time.Now()
			if l.echo != nil {
				io.WriteString(l.echo, e.String())
			}
			return
		}
	}

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    s,
	})

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		l.recent -= trim
		if l.recent < 0 {
			l.recent = 0
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Clear all entries from the logger.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recent = 0
}

// Write contents of the logger to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.writeRecent(output)
}

// writeRecent assumes the critical section is held
func (l *Logger) writeRecent(output io.Writer) {
	for _, e := range l.entries[l.recent:] {
		io.WriteString(output, e.String())
	}
	l.recent = len(l.entries)
}

// Tail writes the last N entries to io.Writer. A negative number means every
// entry.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if number < 0 || number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints entries to io.Writer as they are made. A nil io.Writer
// stops any echoing. If writeRecent is true any entries not yet seen by
// WriteRecent are written to the new echo immediately.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	if l.echo != nil && writeRecent {
		l.writeRecent(l.echo)
	}
}
