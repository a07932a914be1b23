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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/palgen/regression"
	"github.com/jetsetilly/palgen/test"
)

// the tests below change into a temporary working directory so that the
// regression database is created under a disposable resources path

func TestAddListRun(t *testing.T) {
	t.Chdir(t.TempDir())

	reg, err := regression.NewPaletteRegression("composite_16", "stock palette")
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressAdd(w, reg))
	test.ExpectEquality(t, strings.Contains(w.String(), "added: [palette] composite_16 [stock palette]"), true)

	w.Reset()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, strings.Contains(w.String(), "000 [palette] composite_16 [stock palette]"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "Total: 1"), true)

	w.Reset()
	test.ExpectSuccess(t, regression.RegressRunTests(w, false, false, nil))
	test.ExpectEquality(t, strings.Contains(w.String(), "succeed: [palette] composite_16"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail, 0 skipped"), true)
}

func TestFailureDetection(t *testing.T) {
	t.Chdir(t.TempDir())

	reg, err := regression.NewPaletteRegression("approx_nes", "")
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressAdd(w, reg))

	// tamper with the recorded colour count to force a comparison failure
	p := filepath.Join(".palgen", "regression", "db")
	b, err := os.ReadFile(p)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, strings.Contains(string(b), ",54,"), true)
	tampered := strings.Replace(string(b), ",54,", ",55,", 1)
	test.DemandSuccess(t, os.WriteFile(p, []byte(tampered), 0600))

	w.Reset()
	test.ExpectSuccess(t, regression.RegressRunTests(w, false, false, nil))
	test.ExpectEquality(t, strings.Contains(w.String(), "failure: [palette] approx_nes"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "regression tests: 0 succeed, 1 fail, 0 skipped"), true)

	// the failing key was saved and can be rerun with the FAILS key
	w.Reset()
	test.ExpectSuccess(t, regression.RegressRunTests(w, false, false, []string{"FAILS"}))
	test.ExpectEquality(t, strings.Contains(w.String(), "failure: [palette] approx_nes"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "regression tests: 0 succeed, 1 fail, 0 skipped"), true)
}

func TestDeleteConfirmation(t *testing.T) {
	t.Chdir(t.TempDir())

	reg, err := regression.NewPaletteRegression("composite_08", "")
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressAdd(w, reg))

	// answering no leaves the entry in place
	w.Reset()
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("n\n"), "0"))
	test.ExpectEquality(t, strings.Contains(w.String(), "delete? (y/n): "), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "deleted"), false)

	w.Reset()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, strings.Contains(w.String(), "Total: 1"), true)

	// answering yes removes it
	w.Reset()
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("y\n"), "0"))
	test.ExpectEquality(t, strings.Contains(w.String(), "deleted test #0"), true)

	w.Reset()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")
}

func TestFilterKeys(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, name := range []string{"approx_nes", "composite_16"} {
		reg, err := regression.NewPaletteRegression(name, "")
		test.DemandSuccess(t, err, name)
		w := &strings.Builder{}
		test.DemandSuccess(t, regression.RegressAdd(w, reg), name)
	}

	w := &strings.Builder{}
	test.ExpectSuccess(t, regression.RegressRunTests(w, false, false, []string{"1"}))
	test.ExpectEquality(t, strings.Contains(w.String(), "succeed: [palette] composite_16"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail, 1 skipped"), true)

	// keys that cannot be parsed are an error
	test.ExpectFailure(t, regression.RegressRunTests(w, false, false, []string{"not-a-key"}))
}

func TestUnknownSource(t *testing.T) {
	_, err := regression.NewPaletteRegression("nonsense", "")
	test.ExpectFailure(t, err)
}

// listing before anything has been added fails. there is no database file to
// open
func TestListNoDatabase(t *testing.T) {
	t.Chdir(t.TempDir())
	test.ExpectFailure(t, regression.RegressList(&strings.Builder{}))
}
