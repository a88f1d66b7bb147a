package main

import "github.com/danielgatis/go-termcard/cmd/termcard/cmd"

func main() {
	cmd.Execute()
}
