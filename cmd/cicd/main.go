// Command cicd resolves release pipeline configuration and drives the
// release announcement through the reactive notification layer.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/capitan"
)

// Set through -ldflags at build time.
var version = "dev"

func main() {
	bridgeLogs(logrus.StandardLogger())

	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)
	capitan.Shutdown()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errWriter, "panic recovered: %v\n%s", r, debug.Stack())
			exitCode = 1
		}
	}()

	return runner(args)
}

func runWithArgs(args []string) int {
	rootCmd := newRootCmd(version, defaultKubeClient)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
