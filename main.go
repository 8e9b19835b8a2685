package main

import "github.com/coursedeck/coursedeck/cmd"

func main() {
	cmd.Execute()
}
