package main

import "github.com/atomicstack/dockmenu/internal/cli"

func main() {
	cli.Execute()
}
