package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/TimelordUK/minigrep/internal/config"
	"github.com/TimelordUK/minigrep/internal/logging"
	"github.com/TimelordUK/minigrep/internal/runner"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one search and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	// Colour only when stderr is a terminal
	prefix := lipgloss.NewRenderer(stderr).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("167"))

	fail := func(label string, err error) int {
		fmt.Fprintf(stderr, "%s %v\n", prefix.Render(label+":"), err)
		return 1
	}

	cfg, err := config.FromEnvironment(args)
	if err != nil {
		return fail("Problems parsing args", err)
	}

	log, err := logging.New(os.Getenv(logging.LevelEnv), stderr)
	if err != nil {
		return fail("Application error", err)
	}
	defer log.Sync()

	if err := runner.New(stdout, log).Run(cfg); err != nil {
		return fail("Application error", err)
	}
	return 0
}
