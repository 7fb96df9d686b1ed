package main

import "github.com/gaurav-prasanna/mdpress/cmd"

func main() {
	cmd.Execute()
}
