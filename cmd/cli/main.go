package main

import (
	"os"

	"github.com/siteforge-dev/siteforge/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
