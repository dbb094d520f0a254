package main

import (
	"os"

	"github.com/neatar/neatar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
