package main

import "github.com/corewave/x64asm/cmd/x64gen/cmd"

func main() {
	cmd.Execute()
}
