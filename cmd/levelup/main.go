package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/levelup/internal/cli"
	"github.com/julianstephens/levelup/internal/logger"
	"github.com/julianstephens/levelup/internal/session"
	"github.com/julianstephens/levelup/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/levelup/levelup.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize levelup storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Status  cli.StatusCmd  `cmd:"" help:"Show today's dashboard."`
	Habit   cli.HabitCmd   `cmd:"" help:"Check, uncheck, and list habits."`
	Water   cli.WaterCmd   `cmd:"" help:"Record today's water intake."`
	Submit  cli.SubmitCmd  `cmd:"" help:"Lock in today's habits and earn XP."`
	Week    cli.WeekCmd    `cmd:"" help:"Weekly maintenance."`
	Checkin cli.CheckinCmd `cmd:"" help:"Record weight, waist, and energy."`
	Log     cli.LogCmd     `cmd:"" help:"Show past daily logs."`
	Badges  cli.BadgesCmd  `cmd:"" help:"List badges and unlock status."`
	Export  cli.ExportCmd  `cmd:"" help:"Export the full state as JSON."`
	Import  cli.ImportCmd  `cmd:"" help:"Import a previously exported state."`
	Backup  cli.BackupCmd  `cmd:"" help:"Create, list, and restore backups."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Check storage and progression health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("levelup"),
		kong.Description("Habit tracker with XP, levels, streaks, and badges"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not set up logging: %v\n", err)
		os.Exit(1)
	}

	lock, err := session.Acquire(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer lock.Release()

	// Storage backend follows the config file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}

	if err := ctx.Run(appCtx); err != nil {
		lock.Release()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
