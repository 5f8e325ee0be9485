package main

import (
	"os"

	"github.com/ElizavetaFed/Task-Manager2025/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
