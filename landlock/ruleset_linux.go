//go:build linux

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

import (
	ll "github.com/landlock-lsm/go-landlock/landlock/syscall"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Ruleset is a kernel-held collection of path-beneath rules, bounded by
// the set of access rights it declares as handled. A Ruleset is one-shot:
// after RestrictSelf succeeds it is consumed and rejects further use.
type Ruleset struct {
	fd      int
	handled AccessSet
	applied bool
}

// errConsumed guards the one-way transition from accumulating rules to
// being enforced.
var errConsumed = errors.New("ruleset has already been enforced")

// NewRuleset creates a kernel ruleset handling the given access rights.
// Rights outside the handled set remain ungoverned by this ruleset.
func NewRuleset(handled AccessSet) (*Ruleset, error) {
	attr := ll.RulesetAttr{
		HandledAccessFS: uint64(handled),
	}
	fd, err := ll.LandlockCreateRuleset(&attr, 0)
	if err != nil {
		return nil, errors.Wrap(err, "landlock_create_ruleset")
	}
	return &Ruleset{fd: fd, handled: handled}, nil
}

// Handled returns the access rights this ruleset governs.
func (r *Ruleset) Handled() AccessSet {
	return r.handled
}

// AddPath grants the given access rights to the file hierarchy beneath
// path. The path is identified by a close-on-exec O_PATH descriptor that
// exists only for the duration of the call, so no descriptor is ever
// visible to the launched target.
func (r *Ruleset) AddPath(path string, access AccessSet) error {
	if r.applied {
		return errConsumed
	}
	if !access.SubsetOf(r.handled) {
		return errors.Errorf("access %s exceeds handled rights %s", access, r.handled)
	}
	fd, err := unix.Open(path, unix.O_PATH|unix.O_CLOEXEC, 0)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	defer unix.Close(fd)

	rule := ll.PathBeneathAttr{
		AllowedAccess: uint64(access),
		ParentFd:      fd,
	}
	if err := ll.LandlockAddPathBeneathRule(r.fd, &rule, 0); err != nil {
		return errors.Wrapf(err, "landlock_add_rule %q", path)
	}
	return nil
}
