// Package main is the operator CLI: print today's plan, log a set and list
// the logged history against the same spreadsheet the service uses.
package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(os.Getenv, time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
