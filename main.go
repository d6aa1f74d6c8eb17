package main

import "minigo/cmd"

func main() {
	cmd.Execute()
}
