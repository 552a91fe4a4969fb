// This file is part of Yardland.
//
// Yardland is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Yardland is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Yardland.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yardland/yardland/curated"
)

// Error patterns.
const (
	LoadError    = "imageloader: %v"
	HashMismatch = "imageloader: unexpected hash value (%s)"
	BadSpec      = "imageloader: invalid image specification (%s)"
)

// Loader is used to specify the image to load and where to place it.
type Loader struct {
	// filename or URL of the image
	Filename string

	// the address in the machine's address space at which the image is placed
	Address uint32

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, address uint32) Loader {
	return Loader{
		Filename: filename,
		Address:  address,
	}
}

// ParseSpec creates a Loader from a string of the form "filename@address".
// The address can be in any base accepted by strconv.ParseUint() with a base
// argument of zero. If there is no address part the address is zero.
func ParseSpec(spec string) (Loader, error) {
	i := strings.LastIndex(spec, "@")
	if i < 0 {
		return NewLoader(spec, 0), nil
	}

	if i == 0 {
		return Loader{}, curated.Errorf(BadSpec, spec)
	}

	address, err := strconv.ParseUint(spec[i+1:], 0, 32)
	if err != nil {
		return Loader{}, curated.Errorf(BadSpec, spec)
	}

	return NewLoader(spec[:i], uint32(address)), nil
}

// ShortName returns the filename of the image without the path and without
// the extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		ld.Data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(HashMismatch, hash)
	}
	ld.Hash = hash

	return nil
}
