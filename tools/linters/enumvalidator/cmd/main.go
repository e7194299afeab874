package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"pathplan.app/engine/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
