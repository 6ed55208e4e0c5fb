package main

import "github.com/galdyn/potgrid/potgrid/cmd"

func main() {
	cmd.Execute()
}
