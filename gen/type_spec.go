package gen

import (
	"go/ast"
	"iter"

	"golang.org/x/tools/go/packages"
)

// Command is a parsed directive line.
type Command struct {
	Name string
	Args []string
	Gen  Func
}

// TypeSpec is a documented type declaration carrying directives.
type TypeSpec struct {
	Pkg  *packages.Package
	Doc  *ast.CommentGroup
	Spec *ast.TypeSpec
}

// Position returns the source position of the type name.
func (ts *TypeSpec) Position() string {
	return ts.Pkg.Fset.Position(ts.Spec.Pos()).String()
}

// AddCMD appends a [Please] per command to cmds, keyed by generator name.
func (ts *TypeSpec) AddCMD(cmds map[string][]Please, imports map[PkgPath]PkgName, cmdSeq iter.Seq[Command]) {
	filename := ts.Pkg.Fset.Position(ts.Spec.Pos()).Filename

	for cmd := range cmdSeq {
		cmds[cmd.Name] = append(cmds[cmd.Name], Please{
			Filename: filename,
			Args:     cmd.Args,
			TS:       ts,
			Imports:  imports,
		})
	}
}
