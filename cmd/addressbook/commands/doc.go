// Package commands defines the addressbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hello          Greet the assistant
//   - add            Add a contact or append a phone number
//   - change         Replace a phone number
//   - remove-phone   Remove a phone number
//   - phone          Show a contact's phone numbers
//   - all            List every contact
//   - delete         Delete a contact
//   - add-birthday   Set a birthday (DD.MM.YYYY)
//   - show-birthday  Show a birthday
//   - birthdays      Birthdays in the coming week, weekends moved to Monday
//   - export         Print the book as JSON or YAML
//
// # Implementation
//
// The root command loads configuration and builds the app (store, contacts
// service, logger) before any subcommand runs, and saves the book after it
// returns. Invoked without a subcommand it starts an interactive shell that
// dispatches each input line through a fresh tree of the same commands;
// close or exit saves and ends the session.
package commands
