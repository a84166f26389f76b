package main

import (
	"github.com/mchmarny/wordrank/pkg/cli"
)

func main() {
	cli.Execute()
}
