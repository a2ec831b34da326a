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
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin/v2"
	gsyslog "github.com/hashicorp/go-syslog"

	"github.com/ghostunnel/landrun/landlock"
)

// These are initialized via -ldflags
var buildRevision = "unknown"
var buildCompiler = "unknown"

// Exit codes. The successful path has no exit code of its own: the
// process image is replaced by the target, and the target's exit status
// is whatever the caller observes.
const (
	exitUsage       = 64
	exitRuleInstall = 111
	exitEnforcement = 112
	exitLaunch      = 126
)

var (
	app    = kingpin.New("landrun", "Run a command with kernel-enforced (Landlock) filesystem access restrictions.")
	grants = grantFlags(app)
	roRoot = app.Flag("ro-root", "Also grant read-only access to the filesystem root, so dynamically linked targets can load their interpreter and shared libraries.").Bool()
	// verbose/quiet are stderr-only knobs; they never change which rules
	// get installed.
	verbose   = app.Flag("verbose", "Print each derived rule before enforcing it.").Short('v').Bool()
	quiet     = app.Flag("quiet", "Suppress warnings (e.g. partial enforcement on older kernels).").Bool()
	useSyslog = app.Flag("syslog", "Send logs to syslog instead of stderr.").Bool()
)

// Global logger instance
var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

// exitFunc can be overridden in tests.
var exitFunc = os.Exit

func initLogger() {
	if *useSyslog {
		w, err := gsyslog.NewLogger(gsyslog.LOG_NOTICE, "USER", "landrun")
		panicOnError(err)
		logger = log.New(w, "", log.LstdFlags|log.Lmicroseconds)
	}

	// Log prefix is the process ID: diagnostics printed before the exec
	// and output printed by the target come from the "same" process.
	logger.SetPrefix(fmt.Sprintf("[%5d] ", os.Getpid()))
}

// panicOnError panics if err is not nil
func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	app.Version(fmt.Sprintf("rev %s built with %s", buildRevision, buildCompiler))
	exitFunc(run(os.Args[1:]))
}

// run drives the whole pipeline: parse, probe, classify and install the
// rules, restrict, exec. It returns an exit code instead of exiting so
// tests can call it; on a successful exec it never returns at all.
func run(args []string) int {
	// Everything after a literal "--" is the target command, passed
	// through unmodified. The separator is mandatory, and kingpin never
	// sees the command vector, so target flags can't collide with ours.
	sep := -1
	for i, arg := range args {
		if arg == "--" {
			sep = i
			break
		}
	}
	if sep < 0 {
		fmt.Fprintf(os.Stderr, "error: expected \"--\" before the target command, try --help\n")
		return exitUsage
	}
	command := args[sep+1:]

	if _, err := app.Parse(args[:sep]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s, try --help\n", err)
		return exitUsage
	}
	if len(command) == 0 {
		fmt.Fprintf(os.Stderr, "error: missing target command after \"--\", try --help\n")
		return exitUsage
	}

	initLogger()

	abi, err := landlock.Probe()
	if err != nil {
		logger.Printf("error: %s, refusing to run the target unrestricted", err)
		return exitEnforcement
	}

	ruleset, err := landlock.NewRuleset(landlock.FullAccess(abi))
	if err != nil {
		logger.Printf("error: %s", err)
		return exitEnforcement
	}

	rules := grants.grants
	if *roRoot {
		rules = append([]pathGrant{{kind: grantReadOnly, path: "/"}}, rules...)
	}

	for _, g := range rules {
		path, access := resolveGrant(g, abi)
		if *verbose {
			logger.Printf("rule: --%s %s -> %s %s", g.kind, g.path, path, access)
		}
		if err := ruleset.AddPath(path, access); err != nil {
			logger.Printf("error: cannot install rule for --%s %s: %s", g.kind, g.path, err)
			return exitRuleInstall
		}
	}

	if err := ruleset.RestrictSelf(); err != nil {
		logger.Printf("error: %s, refusing to run the target unrestricted", err)
		return exitEnforcement
	}
	if abi.Status() == landlock.StatusPartiallyEnforced && !*quiet {
		logger.Printf("warning: kernel supports landlock ABI v%d out of v%d, restrictions are only partially enforced", abi, landlock.MaxABI)
	}

	if err := launch(command); err != nil {
		logger.Printf("error: %s", err)
		return exitLaunch
	}

	// Unreachable: launch either replaced the process image or returned
	// an error.
	return 0
}
