package main

import (
	"os"

	"numberfacts/cmd/numberfacts-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
