package main

import (
	"os"

	"github.com/katalvlaran/seqalign/cmd/seqalign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
