package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

// The progression model assumes exactly one active session mutating state.
// The lock makes that assumption real: a lockfile holds the owning PID, and
// a new session only proceeds if no live levelup process still owns it.

const lockfileName = "levelup.lock"

// ErrActiveSession means another levelup process currently owns the store.
var ErrActiveSession = errors.New("another levelup session is already running")

var findProcessFunc = ps.FindProcess

// Lock is a held session lock. Release it when the process is done.
type Lock struct {
	path string
}

// Acquire takes the session lock for this process, replacing stale lockfiles
// left behind by crashed sessions.
func Acquire(configDir string) (*Lock, error) {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	path := filepath.Join(configDir, lockfileName)

	if pid, ok := readLockfile(path); ok && pid != os.Getpid() {
		if processAlive(pid) {
			return nil, fmt.Errorf("%w (pid %d)", ErrActiveSession, pid)
		}
		// Stale lock from a dead process; take it over.
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path}, nil
}

// LockOwner reports the PID currently recorded in the lockfile, if any.
func LockOwner(configDir string) (int, bool) {
	return readLockfile(filepath.Join(configDir, lockfileName))
}

// Release removes the lockfile if this process still owns it.
func (l *Lock) Release() error {
	if pid, ok := readLockfile(l.path); ok && pid != os.Getpid() {
		return nil
	}
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

func readLockfile(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// processAlive reports whether the PID belongs to a running levelup process.
// A reused PID in an unrelated process does not count.
func processAlive(pid int) bool {
	proc, err := findProcessFunc(pid)
	if err != nil || proc == nil {
		return false
	}
	return strings.Contains(strings.ToLower(proc.Executable()), "levelup")
}
