package commands

import (
	"github.com/spf13/cobra"

	"addressbook/internal/domain"
)

const notEnoughArguments = "Not enough arguments for the command."

// requireArgs accepts n or more positional args; extra ones are ignored.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return domain.NewInsufficientArgumentsError(cmd.Name(), n, len(args))
		}
		return nil
	}
}

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case domain.IsInsufficientArguments(err):
		return notEnoughArguments
	case domain.IsValidationError(err), domain.IsNotFound(err):
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}
