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

// RestrictSelf irrevocably applies the ruleset to the current process,
// covering all OS threads of the Go runtime. It first sets the
// no-new-privileges attribute; without it an unprivileged process could
// shed the restriction by executing a setuid binary.
//
// On success the ruleset is consumed: its descriptor is closed and any
// further AddPath or RestrictSelf call fails. The kernel enforces the
// same property independently.
func (r *Ruleset) RestrictSelf() error {
	if r.applied {
		return errConsumed
	}
	if err := ll.AllThreadsPrctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return errors.Wrap(err, "prctl PR_SET_NO_NEW_PRIVS")
	}
	if err := ll.AllThreadsLandlockRestrictSelf(r.fd, 0); err != nil {
		return errors.Wrap(err, "landlock_restrict_self")
	}
	r.applied = true
	unix.Close(r.fd)
	r.fd = -1
	return nil
}
