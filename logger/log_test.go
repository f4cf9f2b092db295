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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lynxemu/mikey/logger"
	"github.com/lynxemu/mikey/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the writer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibitLogging{allow: true}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")

	test.ExpectSuccess(t, logger.Allow.AllowLogging())
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")

	log.Clear()
	w.Reset()

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "on")
	test.ExpectSuccess(t, w.Compare("echo: on\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectSuccess(t, w.Compare("echo: on\n"))
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	c.Write([]byte("first line\n"))
	test.ExpectEquality(t, w.String(), "first line\n")

	w.Reset()
	c.Write([]byte("first\nsecond\n"))
	test.ExpectEquality(t, w.String(), "first\n\033[2;31msecond\n\033[0m")
}
