package main

import (
	"os"

	"github.com/edu-resource/dbreset/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
