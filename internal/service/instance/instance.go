package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another process with the same executable name exists.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Lister returns the running processes.
type Lister func() ([]ps.Process, error)

// EnsureSingle fails with ErrAlreadyRunning if a process other than the
// current one runs an executable called name. A nil list uses ps.Processes.
func EnsureSingle(name string, list Lister) error {
	if list == nil {
		list = ps.Processes
	}

	processList, err := list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if !sameExecutable(process.Executable(), name) {
			continue
		}

		return fmt.Errorf("%w: %s (pid %d)", ErrAlreadyRunning, name, process.Pid())
	}

	return nil
}

// CurrentName returns the executable name of this process without the
// Windows ".exe" suffix.
func CurrentName() string {
	return trimExt(filepath.Base(os.Args[0]))
}

// sameExecutable compares names ignoring the Windows executable extension.
func sameExecutable(executable, name string) bool {
	return trimExt(executable) == trimExt(name)
}

// trimExt drops ".exe" on Windows.
func trimExt(name string) string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return strings.TrimSuffix(strings.ToLower(name), ".exe")
	}

	return name
}
