package main

import (
	"os"

	"github.com/hasbyte1/go-underscore/cmd/underscore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
