package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addBirthdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-birthday <name> <DD.MM.YYYY>",
		Short: "Set a contact's birthday",
		Args:  requireArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Contacts.AddBirthday(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Birthday added.")
			return nil
		},
	}
}

func showBirthdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-birthday <name>",
		Short: "Show a contact's birthday",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok, err := appCtx.Contacts.Birthday(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Birthday for '%s' is not specified.\n", args[0])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

// birthdays: who to congratulate over the next week, weekends moved to Monday.
func birthdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "birthdays",
		Short: "List birthdays in the coming week",
		RunE: func(cmd *cobra.Command, args []string) error {
			upcoming := appCtx.Contacts.UpcomingBirthdays()
			if len(upcoming) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No birthdays in the coming week.")
				return nil
			}
			for _, u := range upcoming {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", u.Name, u.DateString())
			}
			return nil
		},
	}
}
