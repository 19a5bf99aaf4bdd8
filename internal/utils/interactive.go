package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether both stdin and stdout are terminals and
// prompts have not been disabled with GITRAMBLE_TEST_NO_INTERACTIVE
func IsInteractive() bool {
	if os.Getenv("GITRAMBLE_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// IsTerminalOutput reports whether stdout is a terminal
func IsTerminalOutput() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
