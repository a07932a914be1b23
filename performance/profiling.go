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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
)

// Profile is used to specify the type of profile to be generated by the
// RunProfiler() function.
type Profile int

// List of valid Profile values. The values can be combined with a bitwise or.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileAll = ProfileCPU | ProfileMem
)

// ParseProfileString converts a string of comma separated profile names to
// the corresponding Profile value.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	for _, t := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "NONE":
			// allowed but makes no difference to the result
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, fmt.Errorf("profiler: unrecognised profile (%s)", t)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function, generating the profiles specified
// by the profile argument. The tag argument is used to name the profile
// files.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return fmt.Errorf("profiler: %w", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("profiler: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", tag))
		if err != nil {
			return fmt.Errorf("profiler: %w", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date statistics

		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return fmt.Errorf("profiler: %w", err)
		}
	}

	return nil
}
