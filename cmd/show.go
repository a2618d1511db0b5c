package cmd

import (
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
)

func show(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "show", action, err)
		return nil
	}
	defer s.close()

	j, err := s.load()
	if err != nil {
		common.PrintRuntimeErr(ctx, "show", "load", err)
		return nil
	}
	if j.Len() == 0 {
		fmt.Println("warpcookie: no cookies found")
		return nil
	}
	for _, c := range j.All() {
		fmt.Print(c.FileLine())
	}
	return nil
}
