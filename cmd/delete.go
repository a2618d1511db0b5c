package cmd

import (
	"errors"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
)

func remove(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !ctx.Args().Present() {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no cookie names given"))
	}
	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "delete", action, err)
		return nil
	}
	defer s.close()

	j, err := s.load()
	if err != nil {
		common.PrintRuntimeErr(ctx, "delete", "load", err)
		return nil
	}
	for _, name := range ctx.Args() {
		if !j.Delete(name) {
			s.log.Warning("no cookie named %s", name)
		}
	}
	if err := s.save(j); err != nil {
		common.PrintRuntimeErr(ctx, "delete", "save", err)
	}
	return nil
}
