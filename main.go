package main

import "pascals/cmd"

func main() {
	cmd.Execute()
}
