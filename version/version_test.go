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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/lynxemu/mikey/test"
)

func TestVersionString(t *testing.T) {
	test.ExpectEquality(t, versionString("v1.0.0", nil), "v1.0.0")
	test.ExpectEquality(t, versionString("", nil), "local")
	test.ExpectEquality(t, versionString("", []debug.BuildSetting{{Key: "vcs", Value: "git"}}), "unreleased")
}

func TestRevision(t *testing.T) {
	test.ExpectEquality(t, revision(nil), "no revision information")

	s := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
	}
	test.ExpectEquality(t, revision(s), "abc123")

	s = append(s, debug.BuildSetting{Key: "vcs.modified", Value: "true"})
	test.ExpectEquality(t, revision(s), "abc123+dirty")
}
