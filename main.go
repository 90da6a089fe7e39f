// Package main is the entry point for the fenceid CLI tool, which resolves
// scraped fencing competition records into stable player identities.
package main

import (
	"github.com/joho/godotenv"

	"github.com/fencekor/fenceid/cmd"
)

func main() {
	// API keys for the analyze command may live in a local .env.
	_ = godotenv.Load()
	cmd.Execute()
}
