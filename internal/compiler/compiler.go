package compiler

import (
	"fmt"
	"os"

	"github.com/briolang/brio/internal/ast"
	"github.com/briolang/brio/internal/checker"
	"github.com/briolang/brio/internal/diagnostic"
	"github.com/briolang/brio/internal/formatter"
	"github.com/briolang/brio/internal/parser"
)

// Result holds the output of running the front end over one source
type Result struct {
	Program     *ast.Program
	Diagnostics *diagnostic.Diagnostics
}

// Parse runs the parser only
func Parse(source string) *Result {
	p := parser.New(source)
	prog := p.Parse()
	return &Result{Program: prog, Diagnostics: p.Diagnostics()}
}

// Check runs parse + name resolution. Name resolution only runs on a
// cleanly parsed tree; parse errors come back as-is.
func Check(source string) *Result {
	res := Parse(source)
	if res.Diagnostics.HasErrors() {
		return res
	}
	res.Diagnostics = checker.Analyze(res.Program)
	return res
}

// Format parses the source and returns it in canonical form. Parse
// errors abort formatting.
func Format(source string) (string, *diagnostic.Diagnostics) {
	res := Parse(source)
	if res.Diagnostics.HasErrors() {
		return "", res.Diagnostics
	}
	return formatter.Format(res.Program), res.Diagnostics
}

// CheckFile reads path and runs Check on its contents
func CheckFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Check(string(source)), nil
}

// ParseFile reads path and runs Parse on its contents
func ParseFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(source)), nil
}
