package main

import (
	"github.com/campushelper/backend/storage/database"
)

var gooseRunFunc = database.RunGoose // mockable

func (cli *commandLine) migrate(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	return gooseRunFunc(args[0], cli.db, args[1:]...)
}
