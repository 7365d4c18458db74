//go:build cli
// +build cli

package main

import (
	"os"

	_ "greenearth.GO/custom"

	"greenearth.GO/cmd"
	"greenearth.GO/config"
)

func main() {
	config.LoadEnv()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
