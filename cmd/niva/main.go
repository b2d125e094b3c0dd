package main

import "github.com/nivahq/niva/cmd/niva/cmd"

func main() {
	cmd.Execute()
}
