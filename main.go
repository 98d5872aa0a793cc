package main

import "github.com/Rorical/LofiStudio/cmd"

func main() {
	cmd.Execute()
}
