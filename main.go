package main

import (
	"os"

	"github.com/carbonshift/ren247/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
