package main

import "github.com/ghpeek/gh-peek/cmd"

func main() {
	cmd.Execute()
}
