// cmd/airo/main.go
package main

import (
	airo "github.com/mwiater/airo/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the airo CLI by delegating to the cobra root command.
func main() {
	airo.SetVersionInfo(version, commit, date)
	airo.Execute()
}
