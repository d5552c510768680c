package main

import "github.com/tabtools/tabconv/cmd"

func main() {
	cmd.Execute()
}
