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
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*kingpin.Application, *grantList) {
	testApp := kingpin.New("landrun-test", "test")
	testApp.Terminate(nil)
	return testApp, grantFlags(testApp)
}

func TestGrantOrderPreserved(t *testing.T) {
	testApp, list := newTestApp()

	_, err := testApp.Parse([]string{"--ro", "/usr", "--rw", "/tmp/work", "--ro", "/etc"})
	require.NoError(t, err)

	assert.Equal(t, []pathGrant{
		{kind: grantReadOnly, path: "/usr"},
		{kind: grantReadWrite, path: "/tmp/work"},
		{kind: grantReadOnly, path: "/etc"},
	}, list.grants, "interleaved --ro/--rw order must survive parsing")
}

func TestGrantFlagsRepeatable(t *testing.T) {
	testApp, list := newTestApp()

	_, err := testApp.Parse([]string{"--rw", "/a", "--rw", "/b", "--rw", "/c"})
	require.NoError(t, err)
	assert.Len(t, list.grants, 3)
}

func TestGrantFlagRequiresValue(t *testing.T) {
	testApp, _ := newTestApp()

	_, err := testApp.Parse([]string{"--rw"})
	assert.Error(t, err, "--rw without a path must be a usage error")
}

func TestUnknownFlagRejected(t *testing.T) {
	testApp, _ := newTestApp()

	_, err := testApp.Parse([]string{"--frobnicate", "/x"})
	assert.Error(t, err)
}

func TestGrantKindString(t *testing.T) {
	assert.Equal(t, "ro", grantReadOnly.String())
	assert.Equal(t, "rw", grantReadWrite.String())
}
