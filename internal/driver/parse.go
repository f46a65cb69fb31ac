package driver

import (
	"rsharp/internal/ast"
	"rsharp/internal/diag"
	"rsharp/internal/parser"
	"rsharp/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program // nil when Bag holds the syntax error
	Bag     *diag.Bag
}

// Parse parses path without binding it.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	prog, perr := parser.Parse(file)
	if perr != nil {
		bag.Add(perr.Diagnostic())
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Bag:     bag,
	}, nil
}
