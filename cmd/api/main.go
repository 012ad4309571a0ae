package main

import "crypto-bot-api/internal/cli"

func main() {
	cli.Execute()
}
