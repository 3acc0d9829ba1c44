// Command linter runs the project's forbiddencalls analyzer.
//
//	go run ./cmd/linter ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/MikhailRaia/tavus-session-proxy/cmd/linter/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
