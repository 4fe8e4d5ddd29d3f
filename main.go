package main

import (
	"github.com/jjtimmons/seqmotif/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
