package main

import (
	"os"

	"github.com/trailkit/regname/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
