package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// PromptForRepoID interactively asks for a repository identifier.
// Used when "hublist export" is invoked without an argument.
func PromptForRepoID() (string, error) {
	var result string

	prompt := &survey.Input{
		Message: "Repository (owner/name):",
		Help:    "Hub repository identifier, e.g. acme/widgets",
	}

	repoValidator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return ValidateRepoID(str)
	}

	if err := survey.AskOne(prompt, &result, survey.WithValidator(repoValidator)); err != nil {
		return "", fmt.Errorf("failed to prompt for repository: %w", err)
	}

	return result, nil
}
