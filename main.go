package main

import (
	"os"

	"github.com/abhisek/hearo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
