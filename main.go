package main

import "github.com/tranvictor/explink/cmd"

func main() {
	cmd.Execute()
}
