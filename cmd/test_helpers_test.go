package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/internal/config"
)

// captureOutput captures stdout and stderr while f runs.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	outC := make(chan string)
	errC := make(chan string)
	go func() {
		var b bytes.Buffer
		io.Copy(&b, rOut)
		outC <- b.String()
	}()
	go func() {
		var b bytes.Buffer
		io.Copy(&b, rErr)
		errC <- b.String()
	}()

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	stdout, stderr = <-outC, <-errC
	rOut.Close()
	rErr.Close()
	return stdout, stderr
}

func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// assertErrorFormat checks for the "warpcookie: cmd[action]:" error prefix.
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	pattern := "warpcookie: " + cmd + "[" + action + "]:"
	if !strings.Contains(output, pattern) {
		t.Errorf("expected error format %q, got:\n%s", pattern, output)
	}
}

// testEnv points the config directory at a temp dir and stubs the help
// printers that would exit the process. It returns the default jar path.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigDirEnv, dir)
	t.Setenv(config.KeyEnv, "")
	t.Setenv("WARPCOOKIE_JAR", "")

	prevApp := common.SetShowAppHelpAndExit(func(*cli.Context, int) {})
	prevCmd := common.SetShowCommandHelp(func(*cli.Context, string) error { return nil })
	t.Cleanup(func() {
		common.SetShowAppHelpAndExit(prevApp)
		common.SetShowCommandHelp(prevCmd)
	})
	return filepath.Join(dir, config.DefaultJarName)
}

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var err error
	stdout, stderr = captureOutput(func() {
		err = Execute(append([]string{"warpcookie"}, args...), BuildArgs{Version: "1.0.0", BuildType: "test"})
	})
	if err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
	return stdout, stderr
}
