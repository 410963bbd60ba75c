package main

import (
	"os"

	"github.com/ThatCatDev/junbi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
