// Package main implements the birdat CLI.
// It adds explicit return-type annotations to functions in BIRD 2.17+ config
// files, eliminating the daemon's type inference warnings.
package main

import (
	"os"

	"github.com/bird-chinese-community/bird2-autotype/cmd/birdat/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`birdat version {{.Version}}
`)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
