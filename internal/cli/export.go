package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/levelup/internal/progress"
)

type ExportCmd struct {
	Out string `help:"Output file path." default:"levelup-export.json"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	data, err := tracker.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("Exported state to %s\n", c.Out)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Previously exported JSON document." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if err := tracker.Import(data); err != nil {
		if errors.Is(err, progress.ErrImport) {
			return fmt.Errorf("could not import %s: the file is not a valid levelup export", c.File)
		}
		return err
	}
	persist(ctx, tracker)

	fmt.Println("Data imported successfully.")
	return nil
}
