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

package cartridgeloader

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/lynxemu/mikey/cartridgeloader/nointro"
	"github.com/lynxemu/mikey/curated"
)

// Loader is used to specify the content to load and identify.
type Loader struct {
	// filename of the content to load. can be a URL
	Filename string

	// expected hash of the loaded content. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the md5 hash of the loaded data
	//
	// for content with an LNX header the hash is of the data following the
	// header
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte

	// the data had an LNX header
	Headed bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data. Loader filenames with a valid scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("http status %s", resp.Status))
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "no data")
	}

	cl.Headed = len(cl.Data) > lnxHeaderSize && bytes.HasPrefix(cl.Data, lnxMagic)

	hash := nointro.Hash(cl.dump())

	// check for hash consistency
	if cl.Hash != "" && !strings.EqualFold(cl.Hash, hash) {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}

// dump is the data without any header
func (cl Loader) dump() []byte {
	if cl.Headed {
		return cl.Data[lnxHeaderSize:]
	}
	return cl.Data
}

// Identify the loaded data. Content that isn't recognised is returned as
// nointro.Default with the ShortName() as the title.
func (cl Loader) Identify() (nointro.Entry, bool) {
	if e, ok := nointro.Lookup(cl.Hash); ok {
		return e, true
	}
	e := nointro.Default
	if cl.Filename != "" {
		e.Title = cl.ShortName()
	}
	return e, false
}
