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

// SelectAll visits every entry in the database in key order. The onSelect
// function says whether the selection should carry on to the next entry.
// Ending a selection early is not an error.
func (db Session) SelectAll(onSelect func(Entry) (bool, error)) error {
	if onSelect == nil {
		return nil
	}

	for _, key := range db.SortedKeyList() {
		cont, err := onSelect(db.entries[key])
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
