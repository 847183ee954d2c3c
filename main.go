// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma is a simulator of the Enigma rotor cipher machine.
package main

import "github.com/bgallie/enigma/cmd"

func main() {
	cmd.Execute()
}
