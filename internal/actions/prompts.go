package actions

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITRAMBLE_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITRAMBLE_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("GITRAMBLE_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// selectPrompt asks the user to pick one of options. Swapped out in tests.
var selectPrompt = func(message string, options []string, initial string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if initial != "" {
		prompt.Default = initial
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// confirmPrompt asks a yes/no question, defaulting to no. Swapped out in tests.
var confirmPrompt = func(message string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
