package main

import "github.com/vibetools/gmforge/cmd"

func main() {
	cmd.Execute()
}
