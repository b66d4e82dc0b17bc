// Package main is the entry point for the linegrep CLI.
package main

import "linegrep.dev/pkg/linegrep/cmd"

func main() {
	cmd.Execute()
}
