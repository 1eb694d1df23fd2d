package main

import "cminor/cmd"

func main() {
	cmd.Execute()
}
