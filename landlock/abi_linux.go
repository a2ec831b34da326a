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
)

// Probe asks the kernel which Landlock ABI level it supports. It returns
// ErrNotSupported if Landlock is absent or disabled. Levels newer than
// MaxABI are clamped, since the extra rights they govern are unknown to
// this package.
func Probe() (ABI, error) {
	v, err := ll.LandlockGetABIVersion()
	if err != nil || v < int(V1) {
		return 0, ErrNotSupported
	}
	if v > int(MaxABI) {
		v = int(MaxABI)
	}
	return ABI(v), nil
}
