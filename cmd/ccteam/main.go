package main

import (
	"os"

	"github.com/bnema/ccteam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
