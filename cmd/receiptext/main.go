package main

import "github.com/oboegaki/receiptext/internal/cli"

func main() {
	cli.Execute()
}
