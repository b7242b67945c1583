package gen

import (
	"go/ast"
	"iter"
	"maps"
	"strings"
)

// headerPrefix starts the header written by [Please.FormatDoNotEditHeader].
const headerPrefix = "// Code generated by " + CmdPrefix

// File is a result of the code generation.
type File struct {
	// Name is an absolute file path.
	Name string
	// Data is a file content.
	Data []byte
}

// IterateFiles groups directive occurrences by the file they were found in.
func IterateFiles(pls []Please) iter.Seq2[string, []Please] {
	m := map[string][]Please{}

	for _, p := range pls {
		m[p.Filename] = append(m[p.Filename], p)
	}

	return maps.All(m)
}

// IsGenerated reports whether the file was written by an ownsplit generator.
// Only comments above the package clause are considered.
func IsGenerated(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}

		for _, c := range group.List {
			if strings.HasPrefix(c.Text, headerPrefix) {
				return true
			}
		}
	}

	return false
}
