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

// Package performance measures how quickly palettes can be generated.
//
// Check() regenerates the palette for a single source over and over for a
// fixed duration and reports the rate, optionally collecting profiling
// information while it runs.
//
// RunProfiler() wraps any function with the requested pprof profiles. It
// imposes no time limit of its own.
//
// CalcRate() converts a palette tally and a duration into the aggregate
// generation rates reported by Check().
package performance
