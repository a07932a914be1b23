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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/palgen/colourgen"
	"github.com/jetsetilly/palgen/gplwriter"
	"github.com/jetsetilly/palgen/logger"
	"github.com/jetsetilly/palgen/modalflag"
	"github.com/jetsetilly/palgen/palwriter"
	"github.com/jetsetilly/palgen/performance"
	"github.com/jetsetilly/palgen/regression"
	"github.com/jetsetilly/palgen/source"
	"github.com/jetsetilly/palgen/statsview"
	"github.com/jetsetilly/palgen/tgawriter"
	"github.com/jetsetilly/palgen/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "LIST", "REGRESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Println(sty.err.Render(fmt.Sprintf("* error: %v", err)))
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "LIST":
		err = list(md)

	case "REGRESS":
		err = regress(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Println(sty.err.Render(fmt.Sprintf("* error in %s mode: %s", md.String(), err)))
		os.Exit(20)
	}
}

// resolveSources converts a list of source names to the sources themselves.
// The word "all" expands to every source, canonical and legacy.
func resolveSources(args []string) ([]source.Source, error) {
	var names []string

	for _, a := range args {
		if strings.ToLower(a) == "all" {
			names = append(names, source.List...)
			names = append(names, source.LegacyList...)
			continue
		}
		names = append(names, a)
	}

	srcs := make([]source.Source, 0, len(names))
	for _, n := range names {
		src, err := source.Lookup(n)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}

	return srcs, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	directory := md.AddString("directory", "", "directory to write palette files to")
	gpl := md.AddBool("gpl", true, "write GIMP palette (.gpl) file")
	tga := md.AddBool("tga", true, "write Truevision TGA (.tga) file")
	pal := md.AddBool("pal", false, "write raw RGB (.pal) file")
	brightness := md.AddFloat64("brightness", 1.0, "brightness scaling. 1.0 leaves brightness unchanged")
	contrast := md.AddFloat64("contrast", 1.0, "contrast scaling. 1.0 leaves contrast unchanged")
	saturation := md.AddFloat64("saturation", 1.0, "saturation scaling. 0.0 reduces every colour to grey")
	hue := md.AddFloat64("hue", 0.0, "hue rotation in degrees")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	md.AdditionalHelp(
		`The arguments to RUN are the names of palette sources, or the word 'all' to generate
a palette for every source. The LIST mode displays the available sources.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one source name required for %s mode", md)
	}

	srcs, err := resolveSources(md.RemainingArgs())
	if err != nil {
		return err
	}

	// create output directory if necessary
	if *directory != "" {
		err = os.MkdirAll(*directory, 0755)
		if err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}

	adj := colourgen.NewAdjust()
	adj.Brightness = *brightness
	adj.Contrast = *contrast
	adj.Saturation = *saturation
	adj.Hue = *hue

	// a failed write is reported as it happens but does not stop the
	// remaining writers or the remaining sources
	numWriteErrors := 0

	for _, src := range srcs {
		gen, err := colourgen.NewColourGen(src)
		if err != nil {
			return err
		}
		gen.SetAdjust(adj)

		err = gen.Generate()
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "palette generated: %d colours\n", gen.NumColours())

		if *gpl {
			fn := filepath.Join(*directory, fmt.Sprintf("%s.gpl", src.Name))
			if err := gplwriter.WriteFile(fn, gen.Colours(), src); err != nil {
				fmt.Fprintln(md.Output, sty.warning.Render(fmt.Sprintf("! %v", err)))
				numWriteErrors++
			} else {
				fmt.Fprintf(md.Output, "written: %s\n", fn)
			}
		}

		if *tga {
			fn := filepath.Join(*directory, fmt.Sprintf("%s.tga", src.Name))
			if err := tgawriter.WriteFile(fn, gen.Colours()); err != nil {
				fmt.Fprintln(md.Output, sty.warning.Render(fmt.Sprintf("! %v", err)))
				numWriteErrors++
			} else {
				fmt.Fprintf(md.Output, "written: %s\n", fn)
			}
		}

		if *pal {
			fn := filepath.Join(*directory, fmt.Sprintf("%s.pal", src.Name))
			if err := palwriter.WriteFile(fn, gen.Colours()); err != nil {
				fmt.Fprintln(md.Output, sty.warning.Render(fmt.Sprintf("! %v", err)))
				numWriteErrors++
			} else {
				fmt.Fprintf(md.Output, "written: %s\n", fn)
			}
		}
	}

	if numWriteErrors > 0 {
		return fmt.Errorf("%d palette file(s) not written", numWriteErrors)
	}

	return nil
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	fmt.Fprintln(md.Output, sty.heading.Render(fmt.Sprintf("%-22s %-25s %5s %5s %5s", "name", "display name", "taps", "hues", "max")))

	rows := func(names []string) {
		for _, n := range names {
			// lookup of a listed name cannot fail
			src, _ := source.Lookup(n)
			fmt.Fprintf(md.Output, "%-22s %-25s %5d %5d %5d\n", src.Name, src.DisplayName, src.Table.Length(), src.Hues(), src.MaxColours)
		}
	}

	rows(source.List)
	rows(source.LegacyList)

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop the run on the first error")

		md.AdditionalHelp(
			`The arguments to RUN are the keys of the regression entries to test. No arguments
means every entry. The word 'fails' expands to the keys that failed on the previous run.`)

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		// no additional arguments

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	notes := md.AddString("notes", "", "additional annotation for the database")

	md.AdditionalHelp(
		`The arguments to ADD are the names of palette sources, or the word 'all' to add a
regression entry for every source.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one source name required for %s mode", md)
	}

	srcs, err := resolveSources(md.RemainingArgs())
	if err != nil {
		return err
	}

	for _, src := range srcs {
		reg, err := regression.NewPaletteRegression(src.Name, *notes)
		if err != nil {
			return err
		}

		err = regression.RegressAdd(md.Output, reg)
		if err != nil {
			// using carriage return (without newline) at beginning of error
			// message because we want to overwrite the last output from
			// RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %w", err)
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	sourceName := md.AddString("source", "composite_16", "source to generate palettes from")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM or ALL (comma sep)")
	useStatsview := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *useStatsview {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build (rebuild with the statsview build tag)")
		}
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prf, *sourceName, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	v := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)
	if *v {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
