package main

import (
	"os"

	"github.com/msto63/plzero/cmd/plzero/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
