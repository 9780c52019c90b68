// Package main is the single-binary entrypoint for bhava.
package main

import "github.com/bhava-app/bhava/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
