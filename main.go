// Package main is the entry point for the tia CLI.
package main

import "tia.dev/pkg/tia/cmd"

func main() {
	cmd.Execute()
}
