// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (and an optional .env file), then
// builds the logger, the book store and the contacts service, exposing them
// via the App struct for commands to use.
package app
