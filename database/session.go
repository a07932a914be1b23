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

package database

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Activity is used to specify the general activity of the database session.
type Activity int

// Valid activities. An ActivityCreating session will create the database
// file if it does not already exist. If the file does exist it is treated
// the same as ActivityModifying. An ActivityReading session can never
// commit changes.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session. All interaction with the
// database is through a Session instance.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts a new database session. The init function is called
// once the database file has been opened and before any entries have been
// read. Use it to register the entry types the database may contain.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	default:
		return nil, fmt.Errorf("database: unrecognised activity")
	}

	var err error
	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if init != nil {
		if err := init(db); err != nil {
			_ = db.dbfile.Close()
			return nil, err
		}
	}

	if err := db.readDBFile(); err != nil {
		_ = db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes to the database are written to
// disk only if commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return fmt.Errorf("database: session already ended")
	}

	if commitChanges {
		if db.activity == ActivityReading {
			return fmt.Errorf("database: cannot commit changes to a read-only session")
		}

		if err := db.dbfile.Truncate(0); err != nil {
			return fmt.Errorf("database: %w", err)
		}

		if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("database: %w", err)
		}

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return err
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, ent.ID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString(entrySep)

			if _, err := db.dbfile.WriteString(s.String()); err != nil {
				return fmt.Errorf("database: %w", err)
			}
		}
	}

	// end session by closing file
	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

// readDBFile clobbers the contents of db.entries.
func (db *Session) readDBFile() error {
	db.entries = make(map[int]Entry)

	// make sure we're at the beginning of the file
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	for i, line := range strings.Split(string(buffer), entrySep) {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return fmt.Errorf("database: malformed entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return fmt.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return fmt.Errorf("database: duplicate key (%03d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return fmt.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return err
		}
		ent.SetKey(key)

		db.entries[key] = ent
	}

	return nil
}
