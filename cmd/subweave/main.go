package main

import (
	"os"

	"github.com/joonwoolee/subweave/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
