package main

import (
	"github.com/englab/englab-calcs/pkg/cli"
)

func main() {
	cli.Execute()
}
