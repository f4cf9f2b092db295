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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. Consecutive entries with the same
// tag and detail are folded into one entry with a repeat count.
//
// Most code will use the package level functions, which log to the central
// logger. A Logger instance is useful when a log needs to be kept separate.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// if echo is not nil new entries are also written to it
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the logger. The detail argument is converted to a
// string according to its type: errors use the Error() function, Stringers
// use the String() function and everything else is formatted with the %v
// verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	l.log(tag, s)
}

// Logf adds a formatted entry to the logger.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *Logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || detail != e.Detail || tag != e.Tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear all entries.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the log to io.Writer. Returns false if there was nothing
// to write.
func (l *Logger) Write(output io.Writer) bool {
	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new log entries to io.Writer as they are added. A nil
// writer turns echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}
