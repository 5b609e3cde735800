package session

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid  int
	name string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.name }

func withFakeProcess(t *testing.T, alive map[int]string) {
	t.Helper()
	orig := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		if name, ok := alive[pid]; ok {
			return fakeProcess{pid: pid, name: name}, nil
		}
		return nil, nil
	}
	t.Cleanup(func() { findProcessFunc = orig })
}

func TestAcquire_FreshLock(t *testing.T) {
	dir := t.TempDir()
	withFakeProcess(t, nil)

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer lock.Release()

	data, err := os.ReadFile(filepath.Join(dir, lockfileName))
	if err != nil {
		t.Fatalf("lockfile missing: %v", err)
	}
	if string(data) != strconv.Itoa(os.Getpid()) {
		t.Errorf("lockfile should hold our pid, got %q", data)
	}
}

func TestAcquire_RefusesLiveSession(t *testing.T) {
	dir := t.TempDir()
	withFakeProcess(t, map[int]string{4242: "levelup"})

	if err := os.WriteFile(filepath.Join(dir, lockfileName), []byte("4242"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Acquire(dir); err == nil {
		t.Fatal("expected acquire to refuse while another session is live")
	}
}

func TestAcquire_ReplacesStaleLock(t *testing.T) {
	dir := t.TempDir()
	withFakeProcess(t, nil) // pid 4242 is dead

	if err := os.WriteFile(filepath.Join(dir, lockfileName), []byte("4242"), 0600); err != nil {
		t.Fatal(err)
	}

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("expected stale lock takeover, got %v", err)
	}
	defer lock.Release()
}

func TestAcquire_IgnoresReusedPID(t *testing.T) {
	dir := t.TempDir()
	// The pid is alive but belongs to something else entirely.
	withFakeProcess(t, map[int]string{4242: "firefox"})

	if err := os.WriteFile(filepath.Join(dir, lockfileName), []byte("4242"), 0600); err != nil {
		t.Fatal(err)
	}

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("expected takeover of a reused pid, got %v", err)
	}
	defer lock.Release()
}

func TestRelease_RemovesLockfile(t *testing.T) {
	dir := t.TempDir()
	withFakeProcess(t, nil)

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, lockfileName)); !os.IsNotExist(err) {
		t.Error("lockfile should be gone after release")
	}
}
