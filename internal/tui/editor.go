package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// noteTemplate follows the note text when it is edited in an external editor
const noteTemplate = "\n# Write the note for %s above.\n# Lines starting with '#' are ignored and an empty note clears it.\n"

// EditNote opens the user's preferred editor on the current note of a commit
// and returns the edited note with comment lines removed.
func EditNote(hash, current string) (string, error) {
	content, err := OpenEditor(current+fmt.Sprintf(noteTemplate, hash), "gitramble-note-*.txt")
	if err != nil {
		return "", err
	}
	return stripComments(content), nil
}

func stripComments(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// OpenEditor opens the user's preferred editor with the given initial content.
// It returns the edited content or an error.
func OpenEditor(initialContent, filenamePattern string) (string, error) {
	tmpFile, err := os.CreateTemp("", filenamePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(initialContent); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command("sh", "-c", fmt.Sprintf("%s %q", editorCommand(), tmpFile.Name()))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	return string(content), nil
}

// editorCommand picks GIT_EDITOR, then EDITOR, then core.editor, then vi
func editorCommand() string {
	for _, env := range []string{"GIT_EDITOR", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	if output, err := exec.Command("git", "config", "--get", "core.editor").Output(); err == nil {
		if editor := strings.TrimSpace(string(output)); editor != "" {
			return editor
		}
	}
	return "vi"
}
