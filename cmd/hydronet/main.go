package main

import "github.com/katalvlaran/hydronet/cli"

func main() {
	cli.Execute()
}
