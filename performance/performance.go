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
	"io"
	"time"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/source"
)

// the timer channel is checked every performanceBrake palettes. checking the
// channel is relatively expensive compared to the generation itself
const performanceBrake = 100

// Check the performance of palette generation for the named source.
//
// Generation will run for the specified duration and will create a cpu
// profile, a memory profile, or both, as defined by the Profile argument.
func Check(output io.Writer, profile Profile, sourceName string, duration string) error {
	src, err := source.Lookup(sourceName)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// tally of complete palettes generated during the measurement period. the
	// number of colours in each palette is noted on the first pass
	numPalettes := 0
	numColours := 0

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. the channel
		// is buffered so the timer goroutine can't block if the runner has
		// already exited on a generation error
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0

		// generate palettes from scratch until the specified time elapses
		for {
			gen, err := colourgen.NewColourGen(src)
			if err != nil {
				return err
			}

			err = gen.Generate()
			if err != nil {
				return err
			}

			if numColours == 0 {
				numColours = gen.NumColours()
			}
			numPalettes++

			brake++
			if brake >= performanceBrake {
				brake = 0

				// the timer expiring is the normal way for the runner to end.
				// returning nil means RunProfiler() carries on to write any
				// heap profile that has been asked for
				select {
				case <-timerChan:
					return nil
				default:
				}
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	rate, colourRate := CalcRate(numPalettes, numColours, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f palettes/sec (%d palettes in %.2f seconds) %.0f colours/sec\n", rate, numPalettes, dur.Seconds(), colourRate)))

	return nil
}
