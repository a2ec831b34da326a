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

package main

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// validateArgv rejects argument vectors that cannot be represented as the
// NUL-terminated strings execve expects.
func validateArgv(argv []string) error {
	for _, arg := range argv {
		for i := 0; i < len(arg); i++ {
			if arg[i] == 0 {
				return errors.Errorf("argument %q contains a null byte", arg)
			}
		}
	}
	return nil
}

// launch replaces the current process image with the target command,
// passing the environment through unchanged. On success it never returns;
// the restrictions installed up to this point carry over into the target.
// Bare command names are resolved against $PATH first, since execve does
// no resolution of its own.
func launch(argv []string) error {
	if err := validateArgv(argv); err != nil {
		return err
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return errors.Wrapf(err, "cannot execute %q", argv[0])
	}
	return errors.Wrapf(unix.Exec(path, argv, os.Environ()), "exec %q", path)
}
