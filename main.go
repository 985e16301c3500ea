package main

import "github.com/edalab/edakit/cmd"

func main() {
	cmd.Execute()
}
