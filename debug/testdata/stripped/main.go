// Command stripped is built by the debug package tests to check what each build mode links in.
package main

import (
	"github.com/saylorsolutions/diag/debug"
	"os"
)

func main() {
	debug.Assert(len(os.Args) < 100)
	debug.AssertPrint(len(os.Args) > 0, os.Args)
	debug.Log(len(os.Args))
	if len(os.Args) > 100 {
		debug.Unreachable()
	}
}
