package main

import (
	"os"

	"github.com/goliatone/go-ixtags/cmd/ixtags/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
