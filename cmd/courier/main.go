package main

import (
	"os"

	"github.com/courier-org/courier-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
