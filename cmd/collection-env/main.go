package main

import "collection-env/internal/cli"

func main() {
	cli.Execute()
}
