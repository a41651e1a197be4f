package main

import (
	"os"

	"rnlauncher/cmd/rnlauncher/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
