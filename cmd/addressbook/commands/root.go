package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"addressbook/internal/app"
)

var (
	home       string
	passphrase string
	format     string
	envFile    string
	appCtx     *app.App

	// now is the clock behind birthday queries.
	now = time.Now
)

// Execute runs the CLI against os.Args.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), userMessage(err))
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "addressbook",
		Short: "Address book with phone numbers and birthday reminders",
		Long: "Manage contacts, their phone numbers and birthdays.\n" +
			"Run without a command to start the interactive assistant.\n" +
			"Put -- before a name that starts with a dash: addressbook add -- -Bob 0123456789.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("home") {
				cfg.Home = home
			}
			if cmd.Flags().Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			appCtx, err = app.New(cfg, now)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.addressbook)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to encrypt the address book (kept in a separate .enc file)")
	root.PersistentFlags().StringVar(&format, "format", "", "storage format: json or yaml (each format has its own file)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to read settings from")

	root.AddCommand(bookCommands()...)
	root.AddCommand(exportCmd())
	return root
}

// bookCommands returns fresh instances of every command that is also
// available inside the interactive shell.
func bookCommands() []*cobra.Command {
	return []*cobra.Command{
		helloCmd(),
		addCmd(),
		changeCmd(),
		removePhoneCmd(),
		phoneCmd(),
		allCmd(),
		deleteCmd(),
		addBirthdayCmd(),
		showBirthdayCmd(),
		birthdaysCmd(),
	}
}
