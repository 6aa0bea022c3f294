// Package main provides the gnkey CLI application.
// gnkey ranks the characters of a multiple-choice plant identification key.
package main

import "github.com/gnames/gnkey/cmd"

func main() {
	cmd.Execute()
}
