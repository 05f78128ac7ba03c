package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const (
	welcomeMessage = "Welcome to the assistant bot!"
	promptMessage  = "Enter a command: "
	goodbyeMessage = "Good bye!"
	invalidCommand = "Invalid command."
)

// runShell reads one command per line from in until close, exit or EOF.
// Command failures are reported on out and never end the session. The book
// is saved before returning.
func runShell(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, welcomeMessage)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptMessage)
		if !scanner.Scan() {
			break
		}
		command, args := parseInput(scanner.Text())
		if command == "close" || command == "exit" {
			break
		}
		if command == "" {
			fmt.Fprintln(out, invalidCommand)
			continue
		}
		dispatch(command, args, out)
	}
	if err := scanner.Err(); err != nil {
		appCtx.Log.Warn("read command", "error", err)
	}

	if err := appCtx.Contacts.Save(); err != nil {
		fmt.Fprintln(out, userMessage(err))
		return err
	}
	fmt.Fprintln(out, goodbyeMessage)
	return nil
}

// parseInput splits a line into a lower-cased command and its arguments.
func parseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// dispatch runs one shell command through a fresh command tree so flag state
// never leaks between lines.
func dispatch(command string, args []string, out io.Writer) {
	tree := &cobra.Command{
		Use:           "addressbook",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	tree.CompletionOptions.DisableDefaultCmd = true
	tree.AddCommand(bookCommands()...)
	tree.InitDefaultHelpCmd()
	tree.SetOut(out)
	tree.SetErr(out)

	argv := shellArgv(command, args)
	if c, _, err := tree.Find(argv); err != nil || c == tree {
		fmt.Fprintln(out, invalidCommand)
		return
	}

	tree.SetArgs(argv)
	if err := tree.Execute(); err != nil {
		appCtx.Log.Debug("command failed", "command", command, "error", err)
		fmt.Fprintln(out, userMessage(err))
	}
}

// shellArgv builds the argument vector for one shell line. Words are taken
// literally, so "--" goes in front of them unless the user asked for help;
// a name such as "-Bob" is then never parsed as a flag.
func shellArgv(command string, args []string) []string {
	argv := []string{command}
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return append(argv, args...)
		}
	}
	argv = append(argv, "--")
	return append(argv, args...)
}
