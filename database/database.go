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
	"sort"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// NumEntries returns the number of entries in the database.
func (db Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db Session) SortedKeyList() []int {
	keys := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// List the entries in key order.
func (db Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key].String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database. The entry is stored against the first spare
// key, which is set on the entry with SetKey().
func (db *Session) Add(ent Entry) error {
	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return fmt.Errorf("database: maximum number of entries exceeded (%d)", maxEntries)
	}

	ent.SetKey(key)
	db.entries[key] = ent

	return nil
}

// Get returns the entry stored against the key.
func (db Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, fmt.Errorf("database: key not available (%03d)", key)
	}
	return ent, nil
}

// Delete an entry from the database. The entry's CleanUp() function is
// called before removal.
func (db *Session) Delete(ent Entry) error {
	key := ent.GetKey()
	if _, ok := db.entries[key]; !ok {
		return fmt.Errorf("database: key not available (%03d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	delete(db.entries, key)

	return nil
}
