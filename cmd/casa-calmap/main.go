package main

import "casa-calmap/internal/cli"

func main() {
	cli.Execute()
}
