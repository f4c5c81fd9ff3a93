package backups

import (
	"fmt"

	"github.com/mklein/gateplan/internal/backup"
	"github.com/mklein/gateplan/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup(ctx.Store.State())
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file to restore from."`
}

// Run replaces the current record with the backup's contents. The imported
// file is normalized on the way in, so legacy-shaped backups restore too.
func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	// Snapshot the current state first so a bad restore can be undone.
	ctx.PerformAutomaticBackup()

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	restored, err := mgr.Restore(c.File)
	if err != nil {
		return err
	}

	*ctx.Store.State() = *restored
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Restored %d task(s) and %d day(s) from %s\n", len(restored.Tasks), len(restored.Days), c.File)
	return nil
}
