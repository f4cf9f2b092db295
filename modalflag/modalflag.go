// This file is part of Mikey.
//
// Mikey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mikey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mikey.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. argsIdx is
	// the start of the arguments for the current mode
	args    []string
	argsIdx int

	// sub-modes for the current mode. the first entry is the default
	subModes []string

	// the modes selected so far
	path []string

	// printed after the flags in help messages
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AdditionalHelp is printed after the list of flags in the help message of the
// current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were added then
	// Mode() will return the selected mode.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Parse the arguments of the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}

		// the flags may belong to the default sub-mode, in which case the
		// arguments are left for the next call to Parse()
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
			return ParseContinue, nil
		}

		return ParseError, err
	}

	// number of flag arguments consumed
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(md.Output, "Usage of %s mode:\n", p)
	} else {
		fmt.Fprintf(md.Output, "Usage:\n")
	}

	n := 0
	md.flags.VisitAll(func(f *flag.Flag) {
		n++
		fmt.Fprintf(md.Output, "  -%s\n    \t%s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(md.Output, " (default %s)", f.DefValue)
		}
		fmt.Fprintln(md.Output)
	})

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	} else if n == 0 {
		fmt.Fprintf(md.Output, "  no flags\n")
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs after a call to Parse(), not including any flags or the
// selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode added is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}
