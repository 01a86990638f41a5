// Package main provides the entry point for imtgen.
// imtgen generates interface-method-table conflict benchmark files.
//
// For the full CLI, use: go run ./cmd/imtgen
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("imtgen - IMT conflict benchmark generator")
	fmt.Println("")
	fmt.Println("Usage: imtgen [options] <IMT_SIZE>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -lang      Target language for the generated file (java or go)")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/imtgen' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/imtgen' instead.")
	}
}
