package main

import (
	"os"

	"github.com/yarlson/go-progressbar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
