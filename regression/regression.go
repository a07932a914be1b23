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

package regression

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jetsetilly/palgen/database"
	"github.com/jetsetilly/palgen/resources"
)

// location of the regression database and supporting files, relative to the
// resources path.
const regressionPath = "regression"
const regressionDBFile = "db"

// the ANSI sequence to clear the current terminal line. the progress message
// for a running test is printed over with the result
const ansiClearLine = "\033[2K"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the entry. the newRegression flag
	// indicates that the test is being run for the first time and that the
	// entry should record the result for later comparison
	//
	// message is the string to print while the test is running. it does not
	// have a trailing newline
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(paletteEntryID, deserialisePaletteEntry)
}

func dbPath() (string, error) {
	return resources.JoinPath(regressionPath, regressionDBFile)
}

// RegressList writes every entry in the regression database to output.
func RegressList(output io.Writer) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The
// confirmation io.Reader allows the function to ask the user before
// committing the deletion. Input not beginning with y or Y cancels.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return fmt.Errorf("regression: invalid key (%s)", key)
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(ent); err != nil {
			return err
		}
		fmt.Fprintf(output, "deleted test #%s from regression database\n", key)
	}

	return nil
}

// RegressAdd adds a new entry to the regression database. The entry's
// regress() function is run once to record the result that future runs will
// be compared against.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("regression: could not record a result for the new entry")
	}

	io.WriteString(output, ansiClearLine)
	fmt.Fprintf(output, "\radded: %s\n", reg)

	return db.Add(reg)
}

// RegressRunTests runs the specified regression tests. An empty keys list
// means every entry in the database.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return fmt.Errorf("regression: io.Writer should not be nil")
	}

	// the special FAILS key expands to the keys that failed last time
	filterKeys, err := addFailsToKeys(filterKeys)
	if err != nil {
		if errors.Is(err, noPreviousFails) {
			fmt.Fprintf(output, "%v\n", err)
			return nil
		}
		return err
	}

	// make sure the list of supplied keys is in order. the selection below
	// visits entries in key order so the filter can be walked in step
	keysV := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("regression: invalid key (%s)", k)
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := 0

	// keys that fail this run. saved at the end for the FAILS key
	failKeys := []string{}

	defer func() {
		fmt.Fprintf(output, "regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)
		if numError > 0 {
			io.WriteString(output, " [with errors]")
		}
		io.WriteString(output, "\n")

		if err := saveFails(failKeys); err != nil {
			fmt.Fprintf(output, "%v\n", err)
		}
	}()

	filterIdx := 0
	visited := 0

	onSelect := func(ent database.Entry) (bool, error) {
		visited++
		key := ent.GetKey()

		if len(keysV) > 0 {
			// the filter is exhausted. every remaining entry is skipped and
			// there is no point continuing the selection
			if filterIdx >= len(keysV) {
				numSkipped += db.NumEntries() - visited + 1
				return false, nil
			}

			if keysV[filterIdx] != key {
				numSkipped++
				return true, nil
			}

			filterIdx++
		}

		reg, ok := ent.(Regressor)
		if !ok {
			return false, fmt.Errorf("regression: database entry does not satisfy the Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		// clear the progress message ready for the result
		io.WriteString(output, ansiClearLine)

		if err != nil {
			numError++
			fmt.Fprintf(output, "\r ERROR: %s\n", reg)
			if verbose {
				fmt.Fprintf(output, "%v\n", err)
			}
			failKeys = append(failKeys, strconv.Itoa(key))
			if failOnError {
				return false, nil
			}
		} else if !ok {
			numFail++
			fmt.Fprintf(output, "\rfailure: %s\n", reg)
			failKeys = append(failKeys, strconv.Itoa(key))
		} else {
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %s\n", reg)
		}

		return true, nil
	}

	return db.SelectAll(onSelect)
}
