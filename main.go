package main

import (
	"os"

	"github.com/skillmatch/skillmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
