package utils

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ReadFromStdin reads piped standard input with trailing newlines removed.
// It returns "" without blocking when stdin is a terminal or an empty file.
func ReadFromStdin() (string, error) {
	return readFrom(os.Stdin)
}

func readFrom(f *os.File) (string, error) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "", nil
	}

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
