package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/levelup/internal/backup"
	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/session"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n   Error: %v\n", err)
		fmt.Println()
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Printf("✓ Store reachable: OK\n")

	state, err := ctx.Store.GetState()
	if err != nil {
		fmt.Printf("❌ State readable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ State readable: OK\n")

		if state.Level < 1 || state.XPNeeded != 100+(state.Level-1)*50 {
			fmt.Printf("❌ Progression invariants: FAIL\n   level=%d xpNeeded=%d\n", state.Level, state.XPNeeded)
			hasError = true
		} else {
			fmt.Printf("✓ Progression invariants: OK\n")
		}

		missing := 0
		for _, id := range catalog.HabitIDs() {
			if _, ok := state.DailyHabits[id]; !ok {
				missing++
			}
		}
		if missing > 0 {
			fmt.Printf("⚠ Habit entries: WARNING\n   %d catalog habits missing from today's state (next rollover repairs this)\n", missing)
		} else {
			fmt.Printf("✓ Habit entries: OK\n")
		}
	}

	if pid, ok := session.LockOwner(filepath.Dir(ctx.Store.GetConfigPath())); !ok {
		fmt.Printf("⚠ Session lock: WARNING\n   lockfile missing or unreadable\n")
	} else if pid != os.Getpid() {
		fmt.Printf("⚠ Session lock: WARNING\n   lockfile held by pid %d, not this process\n", pid)
	} else {
		fmt.Printf("✓ Session lock: OK (pid %d)\n", pid)
	}

	m := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := m.ListBackups()
	switch {
	case err != nil:
		fmt.Printf("⚠ Backups present: WARNING\n   %v\n", err)
	case len(backups) == 0:
		fmt.Printf("⚠ Backups present: WARNING\n   no backups yet, consider 'levelup backup create'\n")
	default:
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
