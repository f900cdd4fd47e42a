package main

import (
	"github.com/shadowscrew/capeshop/internal/cli"
)

func main() {
	cli.Execute()
}
