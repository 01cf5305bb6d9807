package main

import (
	"github.com/pcforge/pcforge/cmd"
)

func main() {
	cmd.Execute()
}
