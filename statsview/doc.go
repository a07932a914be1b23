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

// Package statsview runs a local HTTP server offering live runtime
// statistics, by way of "github.com/go-echarts/statsview". The package is
// only compiled in when the statsview build constraint is given; in other
// builds Launch() is a stub and Available() says so.
//
// Once launched, graphical statistics can be viewed at:
//
//	localhost:12664/debug/statsview
//
// and the standard Go pprof pages at:
//
//	localhost:12664/debug/pprof/
package statsview
