// filepath: cmd/envkeygen/main.go
package main

import "envkeygen/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
