package main

import (
	"os"

	"github.com/wonny/threes/cmd/hoops/commands"
)

// main is the entry point of the hoops CLI
// ⭐ Single CLI entry point: go run ./cmd/hoops [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
