package main

import (
	"github.com/andrescamacho/bakeplan-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
