package main

import "github.com/csemotors/dealership/cmd"

func main() {
	cmd.Execute()
}
