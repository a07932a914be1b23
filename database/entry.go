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

import "fmt"

// SerialisedEntry is the Entry data represented as a list of strings.
type SerialisedEntry []string

// Deserialiser extends a SerialisedEntry to a fully initialised database
// Entry. The fields are the entry's stored fields, not including the key and
// ID leader fields.
type Deserialiser func(fields SerialisedEntry) (Entry, error)

// Entry represents the generic entry in the database.
type Entry interface {
	// ID returns the string that is used to identify the entry type in the
	// database
	ID() string

	// String returns information about the entry in a human readable
	// format. by contrast, the machine readable representation is returned
	// by the Serialise function
	String() string

	// Serialise returns the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// SetKey sets the key for the entry. called by the database when the
	// entry is added or read
	SetKey(key int)

	// GetKey returns the key the entry is stored against
	GetKey() int

	// CleanUp is called when the entry is deleted from the database. use it
	// to remove any supporting files the entry owns
	CleanUp() error
}

// RegisterEntryType tells the database what entries to expect in the
// database and what to do when one is encountered.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("database: duplicate entry type (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
