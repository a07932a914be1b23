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

package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/palgen/database"
	"github.com/jetsetilly/palgen/test"
)

const testEntryID = "test"

type testEntry struct {
	key   int
	name  string
	value string
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("wrong number of fields for test entry")
	}
	return &testEntry{name: fields[0], value: fields[1]}, nil
}

func (ent testEntry) ID() string {
	return testEntryID
}

func (ent testEntry) String() string {
	return fmt.Sprintf("%s = %s", ent.name, ent.value)
}

func (ent testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, ent.value}, nil
}

func (ent *testEntry) SetKey(key int) {
	ent.key = key
}

func (ent testEntry) GetKey() int {
	return ent.key
}

func (ent testEntry) CleanUp() error {
	return nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType(testEntryID, deserialiseTestEntry)
}

func TestEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	w := &strings.Builder{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	test.ExpectSuccess(t, db.EndSession(true))

	// the database file exists even though nothing was added
	_, err = os.Stat(path)
	test.ExpectSuccess(t, err)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.Add(&testEntry{name: "alpha", value: "one"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "beta", value: "two"}))
	test.ExpectSuccess(t, db.EndSession(true))

	// the on-disk format is csv with a three-digit key and the entry type
	// leading every record
	b, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "000,test,alpha,one\n001,test,beta,two\n")

	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "alpha = one")
	test.ExpectEquality(t, ent.GetKey(), 0)

	w := &strings.Builder{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 alpha = one\n001 beta = two\nTotal: 2\n")
}

func TestSelectAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "alpha"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "beta"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "gamma"}))

	// entries are visited in key order
	visited := []int{}
	err = db.SelectAll(func(ent database.Entry) (bool, error) {
		visited = append(visited, ent.GetKey())
		return true, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(visited), 3)
	for i, key := range visited {
		test.ExpectEquality(t, key, i)
	}

	// returning false ends the selection early
	visited = visited[:0]
	err = db.SelectAll(func(ent database.Entry) (bool, error) {
		visited = append(visited, ent.GetKey())
		return false, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(visited), 1)
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.Add(&testEntry{name: "alpha"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "beta"}))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityModifying, initTestSession)
	test.DemandSuccess(t, err)

	ent, err := db.Get(0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.Delete(ent))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectEquality(t, db.NumEntries(), 1)

	_, err = db.Get(0)
	test.ExpectFailure(t, err)

	ent, err = db.Get(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "beta = ")
}

// a new entry takes the first spare key, not the next unused one
func TestKeyReuse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "alpha"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "beta"}))

	ent, err := db.Get(0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.Delete(ent))

	reuse := &testEntry{name: "gamma"}
	test.ExpectSuccess(t, db.Add(reuse))
	test.ExpectEquality(t, reuse.GetKey(), 0)
}

func TestReadOnlySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	// create the empty database file first
	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, db.EndSession(true))

	// changes cannot be committed by a reading session
	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, db.EndSession(true))

	// the session is still open and can be ended without committing
	test.ExpectSuccess(t, db.EndSession(false))
}

func TestUnrecognisedEntryType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	test.DemandSuccess(t, os.WriteFile(path, []byte("000,unknown,alpha,one\n"), 0600))

	_, err := database.StartSession(path, database.ActivityReading, initTestSession)
	test.ExpectFailure(t, err)
}
