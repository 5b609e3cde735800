package cli

import (
	"fmt"

	"github.com/julianstephens/levelup/internal/catalog"
)

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	for _, b := range catalog.Badges() {
		mark := " "
		if tracker.State.HasBadge(b.ID) {
			mark = "✓"
		}
		fmt.Printf("[%s] %s %-18s %s\n", mark, b.Icon, b.Name, b.Desc)
	}
	return nil
}
