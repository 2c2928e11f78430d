package main

import "github.com/kbukum/bitly/internal/cli"

func main() {
	cli.Execute()
}
