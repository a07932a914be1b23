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

// Package regression facilitates the regression testing of palette
// generation. By adding the generated result for a source to a database, the
// generation can be rerun automatically and checked for consistency.
//
// A regression entry records the number of colours generated for a source
// along with a digest of the full colour sequence. Rerunning the test
// regenerates the palette and compares both values. Palette generation is
// deterministic so any difference means the generation code has changed
// behaviour.
//
// The keys passed to RegressRunTests() select which entries to run. The
// special key FAILS expands to the keys that failed on the previous run.
package regression
