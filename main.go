package main

import (
	"os"

	"github.com/gigfinder/gigfinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
