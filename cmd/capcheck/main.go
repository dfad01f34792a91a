// Command capcheck reports copies and moves of values whose types forbid them with capability declarators.
//
// It can be run directly, or used as a vet tool:
//
//	go vet -vettool=$(which capcheck) ./...
package main

import (
	"github.com/saylorsolutions/diag/capability/capcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(capcheck.Analyzer())
}
