package cmd

import (
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/internal/cookies"
)

var importFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "from, f",
		Usage: `cookie store to read, or "auto" for the first installed browser`,
		Value: cookies.AutoSource,
	},
	cli.StringFlag{
		Name:  "domain, d",
		Usage: "only import cookies for this domain and its subdomains",
	},
}

func importCookies(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", action, err)
		return nil
	}
	defer s.close()

	j, err := s.loadOrNew()
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "load", err)
		return nil
	}
	source, n, err := cookies.Import(j, ctx.String("from"), ctx.String("domain"), s.opts...)
	if err != nil {
		common.PrintRuntimeErr(ctx, "import", "read", err)
		return nil
	}
	s.log.Info("read %s store %s", source.Format, source.Path)
	if err := s.save(j); err != nil {
		common.PrintRuntimeErr(ctx, "import", "save", err)
		return nil
	}
	fmt.Printf("warpcookie: imported %d cookies from %s\n", n, source.Browser)
	return nil
}
