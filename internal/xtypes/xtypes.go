// Package xtypes type-checks Go sources that import packages of this module
// without invoking the go command.
package xtypes

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
)

// Module is the import path of this module.
const Module = "github.com/WinPooh32/ownsplit"

// Checker resolves imports of [Module] from the source tree rooted at Root
// and everything else with the default importer.
type Checker struct {
	Fset *token.FileSet
	Root string

	std   types.Importer
	cache map[string]*types.Package
}

// NewChecker returns a checker for the module tree at root.
func NewChecker(root string) *Checker {
	return &Checker{
		Fset:  token.NewFileSet(),
		Root:  root,
		std:   importer.Default(),
		cache: map[string]*types.Package{},
	}
}

// Import implements [types.Importer].
func (c *Checker) Import(path string) (*types.Package, error) {
	if pkg, ok := c.cache[path]; ok {
		return pkg, nil
	}

	rel, ok := strings.CutPrefix(path, Module+"/")
	if !ok {
		return c.std.Import(path)
	}

	files, err := c.parseDir(filepath.Join(c.Root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}

	pkg, err := c.check(path, files, nil)
	if err != nil {
		return nil, err
	}

	c.cache[path] = pkg

	return pkg, nil
}

// Parse parses sources keyed by file name.
func (c *Checker) Parse(sources map[string]string) ([]*ast.File, error) {
	files := make([]*ast.File, 0, len(sources))

	for name, src := range sources {
		file, err := parser.ParseFile(c.Fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		files = append(files, file)
	}

	return files, nil
}

// Check parses and type-checks sources as a single package.
// The map key is a file name used in positions.
func (c *Checker) Check(path string, sources map[string]string) (*types.Package, *types.Info, error) {
	files, err := c.Parse(sources)
	if err != nil {
		return nil, nil, err
	}

	return c.CheckFiles(path, files)
}

// CheckFiles type-checks parsed files as a single package.
func (c *Checker) CheckFiles(path string, files []*ast.File) (*types.Package, *types.Info, error) {
	info := &types.Info{
		Defs:  map[*ast.Ident]types.Object{},
		Types: map[ast.Expr]types.TypeAndValue{},
	}

	pkg, err := c.check(path, files, info)
	if err != nil {
		return nil, nil, err
	}

	return pkg, info, nil
}

func (c *Checker) check(path string, files []*ast.File, info *types.Info) (*types.Package, error) {
	conf := types.Config{Importer: c}

	pkg, err := conf.Check(path, c.Fset, files, info)
	if err != nil {
		return nil, fmt.Errorf("type-check %s: %w", path, err)
	}

	return pkg, nil
}

func (c *Checker) parseDir(dir string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []*ast.File

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := parser.ParseFile(c.Fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		files = append(files, file)
	}

	return files, nil
}
