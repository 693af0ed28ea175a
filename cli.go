//go:build cli
// +build cli

package main

import (
	"biolink.GO/cmd"
	"biolink.GO/config"
	_ "biolink.GO/custom"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cmd.Execute()
}
