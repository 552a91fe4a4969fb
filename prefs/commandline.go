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
	"fmt"
	"sort"
	"strings"
	"sync"
)

var commandLineStack []map[string]string
var commandLineLock sync.Mutex

// PushCommandLineStack forwards an instance of a command line string to the
// preferences system. The string is of the form "key::value; key::value".
// Entries that are not of that form are ignored.
func PushCommandLineStack(prefs string) {
	commandLineLock.Lock()
	defer commandLineLock.Unlock()

	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the top of the stack and returns the entries
// that were not consumed, in the same string format accepted by
// PushCommandLineStack.
func PopCommandLineStack() string {
	commandLineLock.Lock()
	defer commandLineLock.Unlock()

	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, popped[key]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref returns the value for the key on the top of the stack.
// The entry is consumed.
func GetCommandLinePref(key string) (bool, string) {
	commandLineLock.Lock()
	defer commandLineLock.Unlock()

	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}
	return false, ""
}
