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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions test a condition and mark the test as having failed if
// the condition is not met. Tests continue after a failed expectation. The
// Demand functions test the same conditions but a failure is a test fatality.
// Demands are useful when the tested value gates everything that follows, for
// example the lengths of two slices that are about to be iterated in unison.
//
// Both groups accept optional tags which are printed as a prefix to any
// failure message. Tags are invaluable when an expectation sits inside a loop
// and the failing iteration would otherwise be anonymous.
//
// It is worth describing how ExpectSuccess and ExpectFailure handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is a consequence of how errors usually work (nil indicating no error)
// and is the only sensible interpretation.
//
// The Writer type meanwhile, implements the io.Writer interface and should be
// used to capture output. The Writer.Compare() function can then be used to
// test for equality.
package test
