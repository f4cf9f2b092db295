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

// Package version reports the version of the program. A numbered version is
// set at link time:
//
//	go build -ldflags "-X github.com/lynxemu/mikey/version.number=v0.1.0"
//
// Otherwise the version is taken from the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Mikey"

// set by the linker
var number string

// Version returns the version string and the vcs revision. The version is
// "unreleased" for a build from a repository and "local" for a build with no
// vcs information.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(number, nil), "no revision information"
	}
	return versionString(number, info.Settings), revision(info.Settings)
}

func versionString(number string, settings []debug.BuildSetting) string {
	if number != "" {
		return number
	}
	for _, s := range settings {
		if s.Key == "vcs" {
			return "unreleased"
		}
	}
	return "local"
}

func revision(settings []debug.BuildSetting) string {
	var rev string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev == "" {
		return "no revision information"
	}
	if modified {
		return fmt.Sprintf("%s+dirty", rev)
	}
	return rev
}
