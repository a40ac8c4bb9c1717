package main

import "github.com/mindgrove/cortex/cmd/userctl/commands"

func main() {
	commands.Execute()
}
