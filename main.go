// Package main is the entry point for the scrimrank CLI tool, which
// imports 5v5 match results and computes deterministic skill ratings.
package main

import "github.com/matchlab/scrimrank/cmd"

func main() {
	cmd.Execute()
}
