package main

import "urdf-locator/internal/cli"

func main() {
	cli.Execute()
}
