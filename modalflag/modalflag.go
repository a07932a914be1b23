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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// ParseResult is returned from the Parse() function alongside any error.
type ParseResult int

// Valid ParseResult values.
const (
	// parsing succeeded and the program should carry on. if sub-modes were
	// registered before the Parse() then the Mode() function says which one
	// was selected
	ParseContinue ParseResult = iota

	// help was requested and has already been printed
	ParseHelp

	// parsing failed. the error is returned with this result
	ParseError
)

// Modes parses a command line made up of modes, sub-modes and per-mode
// flags. A fresh flag set is created by NewArgs() and again by every call to
// NewMode(), so each layer of the program can define its own flags.
//
// Set the Output field before parsing or help messages will go nowhere.
type Modes struct {
	// destination for help messages. os.Stdout is the usual choice
	Output io.Writer

	flags *flag.FlagSet

	// the complete argument list and how many arguments have been consumed
	// by sub-mode selection so far
	args     []string
	consumed int

	// sub-modes registered for the next Parse()
	modes []string

	// every sub-mode selected over the lifetime of the Modes instance, in
	// selection order. never reset
	path []string

	// extended help set with AdditionalHelp()
	longHelp string
}

// the separator used when printing the mode path.
const pathSep = "/"

func (md *Modes) String() string {
	return md.Path()
}

// Path returns every mode selected so far, joined in selection order.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSep)
}

// Mode returns the most recently selected mode. The empty string means no
// mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs begins parsing of the supplied argument list (os.Args[1:] for the
// command line the program was started with).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.consumed = 0
	md.NewMode()
}

// NewMode begins a new layer of parsing. Flags and sub-modes registered
// before the previous Parse() are forgotten.
func (md *Modes) NewMode() {
	md.modes = md.modes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.longHelp = ""
}

// AddSubModes registers the sub-modes recognised by the next Parse(). The
// first registered sub-mode is the default, selected when the leading
// argument matches none of them. Matching is case insensitive.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.modes = append(md.modes, strings.ToUpper(m))
	}
}

// AdditionalHelp supplements the flag summary in the help message with a
// longer explanation of the mode.
func (md *Modes) AdditionalHelp(help string) {
	md.longHelp = help
}

// Parse the arguments not yet consumed by earlier layers.
//
// Help is handled internally. A result of ParseHelp means the message has
// already been written to the Output field and the program should stop
// without further comment. The suggested handling is:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		printError(err)
//		return
//	}
func (md *Modes) Parse() (ParseResult, error) {
	// the flag package writes usage information as it parses. collect it so
	// that it can be reshaped by the help() function
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.consumed:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.modes, md.longHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag might belong to the default sub-mode. fall
		// into the default and let the next layer of parsing deal with it.
		// with no sub-modes to fall into the error stands
		if len(md.modes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.modes[0])
		return ParseContinue, nil
	}

	if len(md.modes) > 0 {
		md.path = append(md.path, md.matchMode())
	}

	return ParseContinue, nil
}

// matchMode compares the leading non-flag argument against the registered
// sub-modes, consuming the argument on a match. no match selects the default
// sub-mode and leaves the argument alone
func (md *Modes) matchMode() string {
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.modes {
		if m == arg {
			md.consumed++
			return m
		}
	}
	return md.modes[0]
}

// RemainingArgs returns the arguments left over after flag parsing and
// sub-mode selection.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered remaining argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}
