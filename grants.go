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

import "github.com/alecthomas/kingpin/v2"

type grantKind int

const (
	grantReadOnly grantKind = iota
	grantReadWrite
)

func (k grantKind) String() string {
	if k == grantReadWrite {
		return "rw"
	}
	return "ro"
}

// pathGrant is a single --ro or --rw flag occurrence.
type pathGrant struct {
	kind grantKind
	path string
}

// grantList collects --ro and --rw flags into one list that preserves the
// original flag order. Rules are installed in this order, so failure
// diagnostics line up with the invocation the operator wrote.
type grantList struct {
	grants []pathGrant
}

// grantValue adapts one grant kind to kingpin's Value interface, with
// both kinds appending to the same grantList.
type grantValue struct {
	list *grantList
	kind grantKind
}

func (v *grantValue) Set(path string) error {
	v.list.grants = append(v.list.grants, pathGrant{kind: v.kind, path: path})
	return nil
}

func (v *grantValue) String() string { return "" }

// IsCumulative marks the flag as repeatable for kingpin.
func (v *grantValue) IsCumulative() bool { return true }

// grantFlags registers the --rw and --ro flags on app and returns the
// shared ordered list they append to.
func grantFlags(app *kingpin.Application) *grantList {
	list := &grantList{}
	app.Flag("rw", "Grant read-write access beneath PATH (can be repeated).").
		PlaceHolder("PATH").SetValue(&grantValue{list: list, kind: grantReadWrite})
	app.Flag("ro", "Grant read-only access beneath PATH (can be repeated).").
		PlaceHolder("PATH").SetValue(&grantValue{list: list, kind: grantReadOnly})
	return list
}
