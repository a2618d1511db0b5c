package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/pkg/cookiejar"
	"github.com/warpdl/warpcookie/pkg/logger"
	"golang.org/x/term"
)

var (
	stdin           io.Reader = os.Stdin
	stdinIsTerminal           = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var errNoInput = errors.New("no input: give header files or pipe Set-Cookie lines to stdin")

// ingestStats counts what one ingest run did.
type ingestStats struct {
	stored  int
	skipped int
}

func ingest(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !ctx.Args().Present() && stdinIsTerminal() {
		return common.PrintErrWithCmdHelp(ctx, errNoInput)
	}
	s, action, err := newSession(ctx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "ingest", action, err)
		return nil
	}
	defer s.close()

	j, err := s.loadOrNew()
	if err != nil {
		common.PrintRuntimeErr(ctx, "ingest", "load", err)
		return nil
	}

	var stats ingestStats
	if !ctx.Args().Present() {
		if err := ingestHeaders(j, stdin, "stdin", s.log, &stats); err != nil {
			common.PrintRuntimeErr(ctx, "ingest", "read", err)
			return nil
		}
	}
	for _, name := range ctx.Args() {
		if err := ingestFile(j, name, s.log, &stats); err != nil {
			common.PrintRuntimeErr(ctx, "ingest", "read", err)
			return nil
		}
	}
	if err := s.save(j); err != nil {
		common.PrintRuntimeErr(ctx, "ingest", "save", err)
		return nil
	}
	fmt.Printf("warpcookie: stored %d cookies, skipped %d headers\n", stats.stored, stats.skipped)
	return nil
}

func ingestFile(j *cookiejar.Jar, name string, log logger.Logger, stats *ingestStats) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return ingestHeaders(j, f, name, log, stats)
}

// ingestHeaders feeds every Set-Cookie line of r to j. Lines of other
// headers are ignored; invalid Set-Cookie lines are logged and counted.
func ingestHeaders(j *cookiejar.Jar, r io.Reader, source string, log logger.Logger, stats *ingestStats) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !cookiejar.IsSetCookie(text) {
			if hasFoldedSetCookie(text) {
				log.Warning("%s:%d: ignoring header, expected \"Set-Cookie:\" with that exact case", source, line)
			}
			continue
		}
		if err := j.Header(text); err != nil {
			log.Warning("%s:%d: %v", source, line, err)
			stats.skipped++
			continue
		}
		stats.stored++
	}
	return scanner.Err()
}

// hasFoldedSetCookie reports whether text is a Set-Cookie line written in
// another letter case, as HTTP/2 tools print it.
func hasFoldedSetCookie(text string) bool {
	name, _, found := strings.Cut(strings.TrimSpace(text), ":")
	return found && strings.EqualFold(name, "Set-Cookie")
}
