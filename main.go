package main

import "github.com/KostasZigo/makehash/cmd"

func main() {
	cmd.Execute()
}
