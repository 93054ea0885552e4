package main

import "github.com/philipparndt/goobj/cmd"

func main() {
	cmd.Execute()
}
