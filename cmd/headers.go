package cmd

import (
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
)

func request(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "request", action, err)
		return nil
	}
	defer s.close()

	j, err := s.load()
	if err != nil {
		common.PrintRuntimeErr(ctx, "request", "load", err)
		return nil
	}
	fmt.Println(j.RequestHeader())
	return nil
}

func response(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "response", action, err)
		return nil
	}
	defer s.close()

	j, err := s.load()
	if err != nil {
		common.PrintRuntimeErr(ctx, "response", "load", err)
		return nil
	}
	for _, h := range j.ResponseHeaders() {
		fmt.Println(h)
	}
	return nil
}
