package commands

import (
	"github.com/spf13/cobra"

	"addressbook/internal/store"
)

// export writes the book as a plain versioned document, whatever the storage
// encryption. Without -o the storage format is used.
func exportCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the address book as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				to = appCtx.Config.Format
			}
			f, err := store.ParseFormat(to)
			if err != nil {
				return err
			}
			return store.EncodeBook(cmd.OutOrStdout(), appCtx.Contacts.Book(), f)
		},
	}
	cmd.Flags().StringVarP(&to, "output", "o", "", "output format: json or yaml (default: storage format)")
	return cmd
}
