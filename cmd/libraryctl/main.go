package main

import "github.com/kelvinmfon2025/book-api/internal/cli"

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
