// Package main is the entry point for the ehthops CLI.
package main

import "ehthops.dev/pkg/ehthops/cmd"

func main() {
	cmd.Execute()
}
