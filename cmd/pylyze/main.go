package main

import (
	"os"

	"github.com/mkoren/pylyze/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
