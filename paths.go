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

package main

import (
	"os"
	"path/filepath"

	"github.com/ghostunnel/landrun/landlock"
)

// resolveGrant turns a grant into the (path, access) pair for its rule.
//
// Landlock anchors path-beneath rules at directories. When a grant names
// a non-directory (a regular file, /dev/null, ...), the rule is anchored
// at the parent directory instead, with creation and removal rights
// stripped: granting write access to one file must never imply permission
// to create or delete unrelated siblings.
//
// A path that cannot be stat'd is passed through unchanged. Installing
// its rule will fail, and aborting there with the kernel's error beats
// silently narrowing the sandbox.
func resolveGrant(g pathGrant, abi landlock.ABI) (string, landlock.AccessSet) {
	access := landlock.FullAccess(abi)
	if g.kind == grantReadOnly {
		access = landlock.ReadAccess(abi)
	}

	info, err := os.Stat(g.path)
	if err != nil || info.IsDir() {
		return g.path, access
	}

	access = access.Without(landlock.RemovalAccess | landlock.CreationAccess)
	return filepath.Dir(g.path), access
}
