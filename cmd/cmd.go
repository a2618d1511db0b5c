package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "jar, j",
		Usage:  "cookie file to work on (default: <config dir>/cookies.txt)",
		EnvVar: "WARPCOOKIE_JAR",
	},
	cli.BoolFlag{
		Name:  "sealed, s",
		Usage: "encrypt the cookie file with the key kept in the system keyring",
	},
	cli.BoolFlag{
		Name:  "verbose, V",
		Usage: "print progress messages to stderr",
	},
	cli.StringFlag{
		Name:  "log-file",
		Usage: "also append log messages to this file",
	},
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "warpcookie",
		HelpName:              "warpcookie",
		Usage:                 "A Netscape cookie jar for the command line.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "warpcookie [global options] <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Flags:                 globalFlags,
		Commands: []cli.Command{
			{
				Name:               "show",
				Aliases:            []string{"ls"},
				Usage:              "print the cookies of the jar",
				Action:             show,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        ShowDescription,
			},
			{
				Name:                   "set",
				Usage:                  "add or replace cookies",
				UsageText:              "set [flags] name=value...",
				Action:                 set,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            SetDescription,
				UseShortOptionHandling: true,
				Flags:                  setFlags,
			},
			{
				Name:               "delete",
				Aliases:            []string{"rm"},
				Usage:              "remove cookies by name",
				UsageText:          "delete name...",
				Action:             remove,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        DeleteDescription,
			},
			{
				Name:               "ingest",
				Usage:              "store cookies from Set-Cookie headers",
				UsageText:          "ingest [file...]",
				Action:             ingest,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        IngestDescription,
			},
			{
				Name:               "request",
				Usage:              "print the jar as a Cookie header",
				Action:             request,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        RequestDescription,
			},
			{
				Name:               "response",
				Usage:              "print the jar as Set-Cookie headers",
				Action:             response,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        ResponseDescription,
			},
			{
				Name:                   "import",
				Aliases:                []string{"i"},
				Usage:                  "copy cookies from a browser",
				Action:                 importCookies,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ImportDescription,
				UseShortOptionHandling: true,
				Flags:                  importFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of warpcookie",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
