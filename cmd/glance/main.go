package main

import (
	"os"

	"github.com/dshills/glance/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
