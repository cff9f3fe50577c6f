package main

import (
	"os"

	"github.com/briolang/brio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
