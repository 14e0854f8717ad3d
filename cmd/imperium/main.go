package main

import (
	"github.com/twilightsim/imperium-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
