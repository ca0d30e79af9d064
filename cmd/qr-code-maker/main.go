package main

import "github.com/haievyiivan/qr-code-maker/internal/cli"

func main() {
	cli.Execute()
}
