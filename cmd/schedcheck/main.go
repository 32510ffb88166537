package main

import (
	"os"

	"github.com/re-cinq/schedcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
