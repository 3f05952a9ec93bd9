package main

import "github.com/drake/insectboard/internal/cli"

func main() {
	cli.Execute()
}
