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

import "errors"

// ErrNotSupported is returned by Probe when the running kernel has no
// Landlock support (not compiled in, or disabled at boot).
var ErrNotSupported = errors.New("landlock is not supported by the running kernel")

// ABI identifies a Landlock ABI level as reported by the kernel. Each
// level supports a superset of the filesystem access rights of the level
// before it. Zero means no Landlock support.
type ABI int

// Known ABI levels.
const (
	V1 ABI = 1 + iota // basic filesystem access control
	V2                // adds AccessRefer
	V3                // adds AccessTruncate
	V4                // TCP network control, no new filesystem rights
	V5                // adds AccessIoctlDev
	V6                // signal/socket scoping, no new filesystem rights

	// MaxABI is the newest ABI level this package knows how to handle.
	MaxABI = V6
)

// supportedAccess[v] is the full set of filesystem access rights that ABI
// level v supports, indexed by level.
var supportedAccess = []AccessSet{
	0,
	(1 << 13) - 1,
	(1 << 14) - 1,
	(1 << 15) - 1,
	(1 << 15) - 1,
	(1 << 16) - 1,
	(1 << 16) - 1,
}

// Supported returns every filesystem access right that ABI level a can
// restrict.
func (a ABI) Supported() AccessSet {
	if a < 0 || int(a) >= len(supportedAccess) {
		return 0
	}
	return supportedAccess[a]
}

// Status describes how completely restrictions at ABI level a enforce the
// rights this package knows about.
func (a ABI) Status() Status {
	switch {
	case a < V1:
		return StatusUnavailable
	case a < MaxABI:
		return StatusPartiallyEnforced
	default:
		return StatusFullyEnforced
	}
}

// ReadAccess returns the access rights granted by a read-only rule at ABI
// level a: executing files, reading files, and listing directories.
func ReadAccess(a ABI) AccessSet {
	return readAccess & a.Supported()
}

// FullAccess returns every access right ABI level a supports. This is
// both the mask for read-write rules and the "handled" mask declared when
// creating a ruleset: rights the level does not support stay ungoverned,
// which keeps the tool functional on older kernels instead of denying
// operations it cannot reason about.
func FullAccess(a ABI) AccessSet {
	return a.Supported()
}

// Status is the outcome of applying a ruleset to the current process.
type Status int

const (
	// StatusUnavailable means Landlock is not enforced at all.
	StatusUnavailable Status = iota

	// StatusPartiallyEnforced means the kernel enforces a subset of the
	// requested rights (its ABI level predates some of them).
	StatusPartiallyEnforced

	// StatusFullyEnforced means every requested right is enforced.
	StatusFullyEnforced
)

func (s Status) String() string {
	switch s {
	case StatusUnavailable:
		return "unavailable"
	case StatusPartiallyEnforced:
		return "partially enforced"
	case StatusFullyEnforced:
		return "fully enforced"
	default:
		return "unknown"
	}
}
