package app

import (
	"addressbook/internal/logger"
	"addressbook/internal/services/contacts"
)

// App holds the wired components shared by every command.
type App struct {
	Config   Config
	Contacts *contacts.Service
	Log      *logger.Logger
}

// Close saves pending changes and flushes the logger.
func (a *App) Close() error {
	err := a.Contacts.Save()
	a.Log.Sync()
	return err
}
