package cmd

import (
	"errors"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/pkg/cookiejar"
)

var setFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "domain, d",
		Usage: "domain the cookies belong to (required)",
	},
	cli.StringFlag{
		Name:  "path, p",
		Usage: "path the cookies apply to",
		Value: "/",
	},
	cli.StringFlag{
		Name:  "expire, e",
		Usage: "expiry as Unix seconds, RFC 3339 or HTTP date (default: session cookie)",
	},
	cli.BoolFlag{
		Name:  "secure, S",
		Usage: "send the cookies over https only",
	},
	cli.BoolFlag{
		Name:  "http-only, H",
		Usage: "hide the cookies from scripts",
	},
	cli.BoolFlag{
		Name:  "cross-domain, x",
		Usage: "include subdomains of the domain",
	},
	cli.StringSliceFlag{
		Name:  "cookie, c",
		Usage: "cookie to set as name=value, can be repeated",
	},
}

var errNoDomain = errors.New("--domain is required")

func set(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	args := append(ctx.StringSlice("cookie"), ctx.Args()...)
	if len(args) == 0 {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no cookies given"))
	}
	if ctx.String("domain") == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoDomain)
	}
	pairs, err := parseCookieArgs(args)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	records := make([]*cookiejar.Cookie, 0, len(pairs))
	for _, p := range pairs {
		c, err := cookiejar.NewCookie(cookiejar.Options{
			Name:        p.Name,
			Value:       p.Value,
			Domain:      ctx.String("domain"),
			Path:        ctx.String("path"),
			Expire:      parseExpireFlag(ctx.String("expire")),
			Secure:      ctx.Bool("secure"),
			HttpOnly:    ctx.Bool("http-only"),
			CrossDomain: ctx.Bool("cross-domain"),
		})
		if err != nil {
			common.PrintRuntimeErr(ctx, "set", "cookie", err)
			return nil
		}
		records = append(records, c)
	}

	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "set", action, err)
		return nil
	}
	defer s.close()

	j, err := s.loadOrNew()
	if err != nil {
		common.PrintRuntimeErr(ctx, "set", "load", err)
		return nil
	}
	for _, c := range records {
		if err := j.Set(c); err != nil {
			common.PrintRuntimeErr(ctx, "set", "cookie", err)
			return nil
		}
		s.log.Info("set cookie %s for %s", c.Name(), c.Domain)
	}
	if err := s.save(j); err != nil {
		common.PrintRuntimeErr(ctx, "set", "save", err)
	}
	return nil
}
