package main

import "github.com/modelcrate/modelcrate/cmd"

func main() {
	cmd.Execute()
}
