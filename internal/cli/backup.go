package cli

import (
	"fmt"

	"github.com/julianstephens/levelup/internal/backup"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := m.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore." type:"existingfile"`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	// Restore swaps the store file; it must not race an open handle.
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	m := backup.NewManager(ctx.Store.GetConfigPath())
	if err := m.RestoreBackup(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored store from %s\n", c.Path)
	return nil
}
