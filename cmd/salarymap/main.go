package main

import (
	"os"

	"github.com/fr4nk3nst1ner/salarymap/cmd/salarymap/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
