package main

import "shopbot/internal/cli"

func main() {
	cli.Execute()
}
