package main

import "github.com/xvierd/dusk/cmd"

func main() {
	cmd.Execute()
}
