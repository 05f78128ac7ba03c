package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Greet the assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "How can I help you?")
			return nil
		},
	}
}

// add <name> [phone]: create a contact or append a phone to an existing one.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [phone]",
		Short: "Add a contact or a phone number to an existing contact",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var phone string
			if len(args) > 1 {
				phone = args[1]
			}
			created, err := appCtx.Contacts.AddContact(args[0], phone)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Contact added.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Contact updated.")
			}
			return nil
		},
	}
}

func changeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change <name> <old phone> <new phone>",
		Short: "Replace one of a contact's phone numbers",
		Args:  requireArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Contacts.ChangePhone(args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Contact updated.")
			return nil
		},
	}
}

func removePhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-phone <name> <phone>",
		Short: "Remove a phone number from a contact",
		Args:  requireArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Contacts.RemovePhone(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Phone removed.")
			return nil
		},
	}
}

func phoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <name>",
		Short: "Show a contact's phone numbers",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phones, err := appCtx.Contacts.Phones(args[0])
			if err != nil {
				return err
			}
			parts := make([]string, len(phones))
			for i, p := range phones {
				parts[i] = p.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "; "))
			return nil
		},
	}
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := appCtx.Contacts.All()
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Address book is empty.")
				return nil
			}
			for _, r := range records {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a contact",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Contacts.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Contact deleted.")
			return nil
		},
	}
}
