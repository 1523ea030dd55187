package main

import "github.com/andrescamacho/galaxysim/internal/adapters/cli"

func main() {
	cli.Execute()
}
