package main

import "github.com/tradebot/topstepx-token/cmd"

func main() {
	cmd.Execute()
}
