package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spigell/recruit-console/cmd"
)

func main() {
	// .env is optional; real environment variables still win.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
