package main

import (
	"github.com/brunodoc/bruno-doc/cmd"
)

func main() {
	cmd.Execute()
}
