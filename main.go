package main

import "github.com/KineticBytes/echem-cli/cmd"

func main() {
	cmd.Execute()
}
