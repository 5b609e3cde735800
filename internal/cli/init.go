package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized levelup storage at %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Check habits with 'levelup habit check <name>' and commit the day with 'levelup submit'.")
	return nil
}
