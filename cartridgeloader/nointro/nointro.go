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

package nointro

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Rotation is the orientation the screen must be turned to for the content
// to be viewed correctly.
type Rotation int

// List of valid Rotation values.
const (
	None Rotation = iota
	Rotate90
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case None:
		return "none"
	case Rotate90:
		return "90"
	case Rotate270:
		return "270"
	}
	panic("unknown rotation")
}

// Entry is the information known about a dump.
type Entry struct {
	Title    string
	Rotation Rotation
}

func (e Entry) String() string {
	if e.Rotation == None {
		return e.Title
	}
	return fmt.Sprintf("%s [rotate %s]", e.Title, e.Rotation)
}

// Default is the entry to use for content that can't be identified.
var Default = Entry{Title: "unknown", Rotation: None}

// Database is a collection of entries keyed by md5 hash.
type Database struct {
	entries map[string]Entry
}

// NewDatabase creates a Database from a map of md5 hashes. Hashes are
// normalised to lower case.
func NewDatabase(entries map[string]Entry) *Database {
	db := &Database{entries: make(map[string]Entry, len(entries))}
	for h, e := range entries {
		db.entries[strings.ToLower(h)] = e
	}
	return db
}

// Len returns the number of entries in the database.
func (db *Database) Len() int {
	return len(db.entries)
}

// Lookup returns the entry for the hash.
func (db *Database) Lookup(hash string) (Entry, bool) {
	e, ok := db.entries[strings.ToLower(strings.TrimSpace(hash))]
	return e, ok
}

// Identify hashes the data and returns the matching entry.
func (db *Database) Identify(data []byte) (Entry, bool) {
	return db.Lookup(Hash(data))
}

// Hash returns the md5 hash of the data as a lower case hex string.
func Hash(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}

// the database of verified dumps
var verified = NewDatabase(table)

// Lookup the hash in the database of verified dumps.
func Lookup(hash string) (Entry, bool) {
	return verified.Lookup(hash)
}

// Identify the data using the database of verified dumps.
func Identify(data []byte) (Entry, bool) {
	return verified.Identify(data)
}
