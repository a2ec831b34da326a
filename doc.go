// Command landrun runs a target command with kernel-enforced filesystem
// access restrictions, using the Linux Landlock LSM. The caller declares
// the paths the target may read (--ro) or read and write (--rw); landrun
// restricts itself accordingly and then replaces its own process image
// with the target, which inherits the restrictions irrevocably.
//
//	landrun [--rw PATH]... [--ro PATH]... [flags] -- <command> [args...]
//
// Grants apply to whole file hierarchies. When a granted path is not a
// directory, the rule is anchored at its parent directory instead, with
// creation and removal rights stripped so that granting a single file
// never implies permission to create or delete its siblings.
//
// By default nothing outside the granted paths is readable by the target.
// In particular, a dynamically linked target cannot load its interpreter
// or shared libraries unless paths like /usr and /lib are granted; the
// --ro-root flag grants read-only access to the whole filesystem root as
// a convenient baseline for such targets.
//
// landrun refuses to run the target when restrictions cannot be enforced.
// Exit codes: 64 for usage errors, 111 when a rule cannot be installed,
// 112 when Landlock is unavailable or self-restriction fails, and 126
// when the target cannot be executed.
package main
