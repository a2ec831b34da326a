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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghostunnel/landrun/landlock"
)

// resetFlags clears the package-level flag state between run() calls.
// The real binary parses exactly once per process.
func resetFlags() {
	grants.grants = nil
	*roRoot = false
	*verbose = false
	*quiet = false
	*useSyslog = false
}

func TestRunUsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{}},
		{"missing separator", []string{"--ro", "/usr", "echo", "hello"}},
		{"missing command", []string{"--ro", "/usr", "--"}},
		{"unknown flag", []string{"--frobnicate", "--", "echo"}},
		{"flag without value", []string{"--rw", "--", "echo"}},
		{"bare command", []string{"echo", "hello"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags()
			assert.Equal(t, exitUsage, run(tc.args))
		})
	}
}

func TestRunSeparatorStopsFlagParsing(t *testing.T) {
	// Flag-like tokens after the separator belong to the target, so this
	// is not a usage error. The leading grant for a missing path stops
	// the pipeline at rule installation (or at the probe on kernels
	// without Landlock), well before the test process would restrict or
	// replace itself.
	resetFlags()
	code := run([]string{"--rw", "/landrun-missing", "--ro", "/usr", "--", "ls", "--color=auto", "--", "-x"})
	assert.NotEqual(t, exitUsage, code)
}

func TestRunMissingPathFailsBeforeRestriction(t *testing.T) {
	if _, err := landlock.Probe(); err != nil {
		t.Skipf("skipping: %v", err)
	}

	// Rules install in flag order, so the missing path aborts the run
	// before the valid grant or self-restriction is reached.
	resetFlags()
	code := run([]string{"--rw", "/landrun-missing", "--ro", "/usr", "--", "echo", "hi"})
	assert.Equal(t, exitRuleInstall, code)
}

func TestPanicOnError(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("panicOnError should panic, but did not")
		}
	}()

	panicOnError(errors.New("error"))
}

func TestInitLogger(t *testing.T) {
	resetFlags()
	initLogger()
	assert.NotNil(t, logger, "logger should never be nil after init")
	assert.Contains(t, logger.Prefix(), "[")
}
