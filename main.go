package main

import "github.com/pogyomo/mlisp/cmd"

func main() {
	cmd.Execute()
}
