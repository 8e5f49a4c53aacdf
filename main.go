package main

import (
	"github.com/crossfusion/order-engine/cli"
)

func main() {
	cli.Execute()
}
