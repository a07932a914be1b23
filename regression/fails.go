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
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/jetsetilly/palgen/resources"
)

// name of the file the keys of failed tests are saved to.
const fails = "fails"

func saveFails(keys []string) error {
	sort.Strings(keys)
	keys = slices.Compact(keys)

	p, err := resources.JoinPath(regressionPath, fails)
	if err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("save fails: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	for _, v := range keys {
		fmt.Fprintf(f, "%s\n", v)
	}

	return nil
}

func loadFails() ([]string, error) {
	p, err := resources.JoinPath(regressionPath, fails)
	if err != nil {
		return nil, fmt.Errorf("load fails: %w", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load fails: %w", err)
	}

	keys := strings.Split(string(b), "\n")
	sort.Strings(keys)
	keys = slices.Compact(keys)
	keys = slices.DeleteFunc(keys, func(s string) bool {
		return len(strings.TrimSpace(s)) == 0
	})

	return keys, nil
}

var noPreviousFails = errors.New("no previous fails")

// addFailsToKeys replaces the special key FAILS with the keys saved by the
// previous run. returns noPreviousFails if there is nothing to replace it
// with.
func addFailsToKeys(keys []string) ([]string, error) {
	sort.Strings(keys)
	keys = slices.Compact(keys)

	n := slices.IndexFunc(keys, func(s string) bool {
		return strings.ToUpper(s) == "FAILS"
	})
	if n < 0 {
		return keys, nil
	}
	keys = slices.Delete(keys, n, n+1)

	prev, err := loadFails()
	if err != nil {
		return keys, err
	}
	if len(prev) == 0 {
		return keys, noPreviousFails
	}

	return append(keys, prev...), nil
}
