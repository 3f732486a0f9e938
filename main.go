package main

import (
	"os"

	"github.com/pmma/lifeskills/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
