package main

import (
	"os"

	"github.com/remessa-dev/remessa/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
