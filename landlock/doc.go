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

// Package landlock negotiates with the Linux Landlock LSM and applies
// filesystem self-restriction.
//
// The package is a thin, typed layer over the raw Landlock system calls
// (via github.com/landlock-lsm/go-landlock/landlock/syscall). It exposes
// exactly the primitives a privilege-reduction launcher needs:
//
//   - Probe discovers the kernel's Landlock ABI level.
//   - ReadAccess and FullAccess derive the per-level access masks.
//   - Ruleset accumulates path-beneath rules and, via RestrictSelf,
//     irrevocably applies them to the calling process.
//
// Unlike the high-level go-landlock API, nothing here is best-effort: a
// kernel without Landlock support is reported as an error rather than
// silently skipped, so callers can refuse to run rather than run
// unrestricted. A kernel with an older ABI level than the newest one this
// package knows about is usable, but ABI.Status reports the enforcement
// as partial so callers can warn about it.
package landlock
