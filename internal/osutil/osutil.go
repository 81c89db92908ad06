// Package osutil holds the platform names, permissions and exit codes shared
// by the rest of pomo
package osutil

import "os"

const (
	Windows = "windows"
	Darwin  = "darwin"
)

// ExitCode is the status pomo exits with.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

const (
	DirPermission  os.FileMode = 0o755
	FilePermission os.FileMode = 0o600
)

// Exit terminates the process with code.
func Exit(code ExitCode) {
	os.Exit(int(code))
}
