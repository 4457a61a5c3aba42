package main

import (
	"github.com/joho/godotenv"

	"coursepack/cmd"
)

func main() {
	// Optional .env for COURSEPACK_* overrides; absence is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
