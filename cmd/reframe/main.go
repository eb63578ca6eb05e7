package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"reframe-cli/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
