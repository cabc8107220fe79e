package main

import (
	"os"

	"github.com/ciaranor/clubsocs-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
