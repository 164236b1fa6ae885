package main

import "github.com/iceinvein/bootleg-msn/cmd"

func main() {
	cmd.Execute()
}
