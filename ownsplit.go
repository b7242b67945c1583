// Package ownsplit finds ownsplit directives in Go packages and runs the
// registered generators on them.
//
// A directive is a comment line in the doc of a type declaration:
//
//	//ownsplit:split 3 4
//	type Digits [7]int
package ownsplit

import (
	"context"
	"fmt"
	"go/ast"
	"iter"
	"maps"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/WinPooh32/ownsplit/gen"
	"github.com/WinPooh32/ownsplit/internal/xslices"
	"github.com/WinPooh32/ownsplit/opt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"
)

const pkgLoadMode = packages.NeedModule |
	packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

type pkgID string

// Generator loads go files and runs generators on them.
type Generator struct {
	pkgs map[pkgID]*packages.Package
}

// NewGenerator returns a new initialized [Generator] instance.
func NewGenerator() (*Generator, error) {
	return &Generator{
		pkgs: make(map[pkgID]*packages.Package),
	}, nil
}

// Load loads Go packages by the given patterns to the [Generator] instance.
// Test files are loaded too.
// Type errors inside previously generated files are ignored, so that
// stale output can be regenerated.
//
// Dir parameter is the directory in which to run the build system's query
// tool that provides information about the packages.
// If Dir is empty, the tool is run in the current directory.
func (g *Generator) Load(ctx context.Context, dir string, patterns ...string) (*Generator, error) {
	cfg := &packages.Config{
		Mode:    pkgLoadMode,
		Context: ctx,
		Dir:     dir,
		Tests:   true,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs pkgerrs

	for _, pkg := range pkgs {
		if dropGeneratedErrors(pkg) {
			errs = append(errs, pkg)
			continue
		}

		g.pkgs[pkgID(pkg.ID)] = pkg
	}

	if errs != nil {
		return g, &errs
	}

	return g, nil
}

// Len returns the number of loaded packages.
func (g *Generator) Len() int {
	return len(g.pkgs)
}

// Generate runs generator functions on the loaded packages.
// Returns the stream of generated contents; the stream ends with an error
// result if any generator fails.
// The jobs parameter specifies number of used goroutines for processing, if set as 0 number of cpu cores will be used.
func (g *Generator) Generate(ctx context.Context, jobs int, gens map[gen.GeneratorName]gen.Func) <-chan opt.Result[gen.File] {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	resC := make(chan opt.Result[gen.File], jobs*max(1, len(gens)))

	go func() {
		defer close(resC)

		eg, ctx := errgroup.WithContext(ctx)
		ids := slices.Sorted(maps.Keys(g.pkgs))

		for part := range xslices.Partition(ids, jobs) {
			eg.Go(func() error {
				wrkr := genWorker{
					pkgs:   g.pkgs,
					gens:   gens,
					pkgIDs: part,
					resC:   resC,
				}

				return wrkr.run(ctx)
			})
		}

		if err := eg.Wait(); err != nil {
			resC <- opt.Err[gen.File](err)
			return
		}
	}()

	return resC
}

type genWorker struct {
	pkgs   map[pkgID]*packages.Package
	gens   map[gen.GeneratorName]gen.Func
	pkgIDs []pkgID
	resC   chan<- opt.Result[gen.File]
}

func (gw *genWorker) run(ctx context.Context) error {
	for _, id := range gw.pkgIDs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context is done: %w", err)
		}

		pkg, ok := gw.pkgs[id]
		if !ok {
			return fmt.Errorf("the package is not found by ID %s", id)
		}

		if err := gw.execGenerators(ctx, gw.scan(pkg)); err != nil {
			return fmt.Errorf("package %s: %w", pkg.PkgPath, err)
		}
	}

	return nil
}

// scan collects directives of the package keyed by generator name.
func (gw *genWorker) scan(pkg *packages.Package) map[string][]gen.Please {
	var syntax []*ast.File

	switch {
	case isTestBinary(pkg):
		return nil
	case isTestPackage(pkg):
		syntax = selectTestfiles(pkg, pkg.Syntax)
	default:
		syntax = pkg.Syntax
	}

	cmds := map[string][]gen.Please{}

	for _, file := range syntax {
		imports := fileImports(file)
		in := inspector.New([]*ast.File{file})

		for ts := range typeSpecs(pkg, in) {
			ts.AddCMD(cmds, imports, commands(ts.Doc, gw.gens))
		}
	}

	if len(cmds) == 0 {
		return nil
	}

	return cmds
}

func (gw *genWorker) execGenerators(ctx context.Context, cmds map[string][]gen.Please) error {
	if cmds == nil {
		return nil
	}

	for name, genf := range gw.gens {
		pls, ok := cmds[string(name)]
		if !ok {
			continue
		}

		files, err := genf(ctx, name, pls)
		if err != nil {
			return fmt.Errorf("run generator %s: %w", name, err)
		}

		for _, file := range files {
			if err := gw.sendFile(ctx, file); err != nil {
				return err
			}
		}
	}

	return nil
}

func (gw *genWorker) sendFile(ctx context.Context, file gen.File) error {
	select {
	case gw.resC <- opt.Ok(file):
	case <-ctx.Done():
		return fmt.Errorf("context is done: %w", ctx.Err())
	}

	return nil
}

var typeSpecsFilter = []ast.Node{
	new(ast.GenDecl),
	new(ast.TypeSpec),
}

// typeSpecs yields documented type specs. The doc of a grouped declaration
// is taken from the group when the spec has none.
func typeSpecs(pkg *packages.Package, in *inspector.Inspector) iter.Seq[*gen.TypeSpec] {
	return func(yield func(*gen.TypeSpec) bool) {
		stop := false

		in.WithStack(typeSpecsFilter, func(n ast.Node, _ bool, stack []ast.Node) (proceed bool) {
			spec, ok := n.(*ast.TypeSpec)
			if !ok || stop {
				return !stop
			}

			var doc *ast.CommentGroup

			if spec.Doc != nil {
				doc = spec.Doc
			} else if decl, ok := stack[len(stack)-2].(*ast.GenDecl); ok && len(decl.Specs) == 1 {
				doc = decl.Doc
			}

			if doc == nil {
				return false
			}

			stop = !yield(&gen.TypeSpec{
				Pkg:  pkg,
				Doc:  doc,
				Spec: spec,
			})

			return false
		})
	}
}

// commands yields directives of the registered generators found in doc.
func commands(doc *ast.CommentGroup, gens map[gen.GeneratorName]gen.Func) iter.Seq[gen.Command] {
	return func(yield func(gen.Command) bool) {
		for _, line := range doc.List {
			fields := strings.Fields(trimCommentPrefix(line.Text))
			if len(fields) == 0 {
				continue
			}

			name, ok := strings.CutPrefix(fields[0], gen.CmdPrefix)
			if !ok {
				continue
			}

			genf, ok := gens[gen.GeneratorName(name)]
			if !ok {
				continue
			}

			cmd := gen.Command{
				Name: name,
				Args: fields[1:],
				Gen:  genf,
			}

			if !yield(cmd) {
				return
			}
		}
	}
}

// fileImports maps import paths of the file to their explicit aliases.
func fileImports(file *ast.File) map[gen.PkgPath]gen.PkgName {
	imports := make(map[gen.PkgPath]gen.PkgName, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		var alias gen.PkgName

		if spec.Name != nil {
			alias = gen.PkgName(spec.Name.Name)
		}

		imports[gen.PkgPath(path)] = alias
	}

	return imports
}

func selectTestfiles(pkg *packages.Package, syntax []*ast.File) []*ast.File {
	var testfiles []*ast.File

	for _, file := range syntax {
		f := pkg.Fset.File(file.Pos())
		if f == nil {
			continue
		}

		name := f.Name()
		if !strings.HasSuffix(strings.ToLower(name), "_test.go") {
			continue
		}

		testfiles = append(testfiles, file)
	}

	return testfiles
}

func isTestPackage(pkg *packages.Package) bool {
	for _, f := range pkg.GoFiles {
		if strings.HasSuffix(f, "_test.go") {
			return true
		}
	}

	return false
}

// isTestBinary reports whether pkg is the synthesized test main package.
func isTestBinary(pkg *packages.Package) bool {
	return strings.HasSuffix(pkg.ID, ".test") && pkg.Name == "main"
}

func isCommentSlashOrSpace(r rune) bool {
	return r == '/' || unicode.IsSpace(r)
}

func trimCommentPrefix(s string) string {
	return strings.TrimLeftFunc(s, isCommentSlashOrSpace)
}
