package main

import "menodiary/internal/cli"

func main() {
	cli.Execute()
}
