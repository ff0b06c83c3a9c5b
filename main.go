package main

import (
	"os"

	"github.com/abhisek/learnix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
