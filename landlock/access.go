/*-
 * Copyright 2026, Ghostunnel
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package landlock

import "strings"

// AccessSet is a set of Landlock filesystem access rights, one bit per
// right. The bit positions match the LANDLOCK_ACCESS_FS_* values from the
// kernel UAPI, so an AccessSet can be passed to the Landlock system calls
// directly.
type AccessSet uint64

// Individual filesystem access rights. Rights past AccessMakeSym only
// exist on newer ABI levels; see ABI.Supported.
const (
	AccessExecute AccessSet = 1 << iota
	AccessWriteFile
	AccessReadFile
	AccessReadDir
	AccessRemoveDir
	AccessRemoveFile
	AccessMakeChar
	AccessMakeDir
	AccessMakeReg
	AccessMakeSock
	AccessMakeFifo
	AccessMakeBlock
	AccessMakeSym
	AccessRefer
	AccessTruncate
	AccessIoctlDev
)

// Right groups used when deriving rule masks.
const (
	// RemovalAccess are the rights to unlink entries beneath a directory.
	RemovalAccess = AccessRemoveDir | AccessRemoveFile

	// CreationAccess are the rights to create new entries beneath a
	// directory. Like RemovalAccess, these are meaningless when a rule is
	// anchored at a non-directory.
	CreationAccess = AccessMakeChar | AccessMakeDir | AccessMakeReg |
		AccessMakeSock | AccessMakeFifo | AccessMakeBlock | AccessMakeSym

	// readAccess are the rights granted by read-only rules. AccessRefer is
	// deliberately absent: reparenting a file into a hierarchy is a write
	// operation no matter how the hierarchy was granted.
	readAccess = AccessExecute | AccessReadFile | AccessReadDir
)

var accessNames = []string{
	"execute",
	"write_file",
	"read_file",
	"read_dir",
	"remove_dir",
	"remove_file",
	"make_char",
	"make_dir",
	"make_reg",
	"make_sock",
	"make_fifo",
	"make_block",
	"make_sym",
	"refer",
	"truncate",
	"ioctl_dev",
}

// SubsetOf reports whether every right in a is also in b.
func (a AccessSet) SubsetOf(b AccessSet) bool {
	return a&b == a
}

// Without returns a with all rights in b removed.
func (a AccessSet) Without(b AccessSet) AccessSet {
	return a &^ b
}

// IsEmpty reports whether a contains no rights.
func (a AccessSet) IsEmpty() bool {
	return a == 0
}

func (a AccessSet) String() string {
	if a.IsEmpty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range accessNames {
		if a&(1<<i) == 0 {
			continue
		}
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		b.WriteString(name)
	}
	b.WriteByte('}')
	return b.String()
}
