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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written to the head of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value on a line in the prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// entries in the file that have no matching Add() are preserved so that
	// saving a partially loaded Disk does not lose data
	unknown map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]string),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used as the key in the prefs file. Keys cannot contain
// whitespace.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("prefs: key cannot contain whitespace (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	all := make(map[string]string, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		all[k] = v
	}
	for k, p := range dsk.entries {
		all[k] = p.String()
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, all[k])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

// Load preference values from disk. A missing prefs file is not an error and
// leaves the values untouched. Values on the top of the command line stack
// take priority over values on disk.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("prefs: %w", err)
		}
	} else {
		defer f.Close()
		if err := dsk.read(f); err != nil {
			return err
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

func (dsk *Disk) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	// first line is the boilerplate
	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}

		if p, ok := dsk.entries[kv[0]]; ok {
			if err := p.Set(kv[1]); err != nil {
				return fmt.Errorf("prefs: %s: %w", kv[0], err)
			}
		} else {
			dsk.unknown[kv[0]] = kv[1]
		}
	}

	return scanner.Err()
}

// DefaultPrefsFile is the filename of the prefs file in the resource path.
const DefaultPrefsFile = "preferences"

// Reset all values added to the Disk to their zero values.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}
