// Package split generates owned array split methods.
//
// The directive
//
//	//ownsplit:split 3 4
//	type Digits [7]int
//
// produces
//
//	func (a *Digits) Split3x4() (left [3]int, right [4]int)
//
// which relocates a[0:3] into left and a[3:7] into right, zeroing a.
// A directive whose lengths do not add up to the array length is rejected
// while generating. The generated method converts its receiver to *[K + L]E,
// so an array type resized after generation breaks the build until the
// method is regenerated.
//
// Arguments: K L [--name Method].
package split

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/WinPooh32/ownsplit/gen"
	"golang.org/x/tools/imports"
)

// OwnPkgPath is the import path of the relocation primitives used by the generated code.
const OwnPkgPath gen.PkgPath = "github.com/WinPooh32/ownsplit/own"

const methodPrefix = "Split"

var errDuplicate = errors.New("duplicate split method")

// Generate renders one file per source file holding split directives.
func Generate(ctx context.Context, name gen.GeneratorName, gp []gen.Please) ([]gen.File, error) {
	var files []gen.File

	buf := bytes.NewBuffer(nil)

	for filename, gp := range gen.IterateFiles(gp) {
		buf.Reset()
		buf.WriteString(gp[0].FormatDoNotEditHeader(name))
		buf.WriteString(gp[0].FormatPkg())

		if err := generate(buf, gp); err != nil {
			return nil, fmt.Errorf("generate for %s: %w", filename, err)
		}

		dst := gp[0].FormatFileName(name)

		data, err := Format(dst, buf.Bytes())
		if err != nil {
			return nil, err
		}

		files = append(files, gen.File{
			Name: dst,
			Data: data,
		})

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context is closed: %w", ctx.Err())
		default:
		}
	}

	return files, nil
}

// Format gofmts generated source.
func Format(filename string, src []byte) ([]byte, error) {
	data, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}

	return data, nil
}

func generate(buf *bytes.Buffer, gp []gen.Please) error {
	usedImports := map[gen.PkgPath]gen.PkgName{}
	qualifiers := nameSet{}

	infos, err := collect(gp, usedImports, qualifiers)
	if err != nil {
		return err
	}

	taken := takenNames(gp[0].TS.Pkg.Types.Scope(), qualifiers)

	// Type parameters shadow the import inside method bodies.
	ownTaken := nameSet{}
	for name := range taken {
		ownTaken.add(name)
	}

	for _, info := range infos {
		for _, name := range info.typeParamNames {
			ownTaken.add(name)
		}
	}

	own := ownTaken.free(ownAliases...)
	if own == ownAliases[0] {
		usedImports[OwnPkgPath] = ""
	} else {
		usedImports[OwnPkgPath] = gen.PkgName(own)
	}

	for i := range infos {
		infos[i].names = localNames(taken, own, infos[i].typeParamNames)
	}

	genImports(buf, usedImports)

	for _, info := range infos {
		if err := tmpl.Execute(buf, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
	}

	return nil
}

// collect groups directives by type in source order and validates every split.
func collect(gp []gen.Please, usedImports map[gen.PkgPath]gen.PkgName, qualifiers nameSet) ([]arrayInfo, error) {
	gp = slices.Clone(gp)

	slices.SortStableFunc(gp, func(a, b gen.Please) int {
		return cmp.Compare(a.TS.Spec.Pos(), b.TS.Spec.Pos())
	})

	var infos []arrayInfo

	index := map[*gen.TypeSpec]int{}
	methods := map[*gen.TypeSpec]map[string]struct{}{}

	for _, pls := range gp {
		i, ok := index[pls.TS]
		if !ok {
			info, err := analyze(pls, usedImports, qualifiers)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pls.TS.Position(), err)
			}

			i = len(infos)
			index[pls.TS] = i
			methods[pls.TS] = map[string]struct{}{}
			infos = append(infos, info)
		}

		info := &infos[i]

		sp, err := newSplit(info, pls.Args)
		if err != nil {
			return nil, fmt.Errorf("%s: type %s: %w", pls.TS.Position(), info.Name, err)
		}

		if _, ok := methods[pls.TS][sp.Method]; ok {
			return nil, fmt.Errorf("%s: type %s: %w %s", pls.TS.Position(), info.Name, errDuplicate, sp.Method)
		}

		methods[pls.TS][sp.Method] = struct{}{}
		info.Splits = append(info.Splits, sp)
	}

	return infos, nil
}

func newSplit(info *arrayInfo, args []string) (splitInfo, error) {
	cfg, err := parseArgs(args)
	if err != nil {
		return splitInfo{}, err
	}

	plan, err := NewPlan(info.N, cfg.K, cfg.L)
	if err != nil {
		return splitInfo{}, err
	}

	method := cfg.Name
	if method == "" {
		method = plan.Name(methodPrefix)
	}

	return splitInfo{
		Method: method,
		Plan:   plan,
	}, nil
}

// genImports writes the import block with standard library packages grouped first,
// the way goimports lays it out.
func genImports(buf *bytes.Buffer, usedImports map[gen.PkgPath]gen.PkgName) {
	pkgs := slices.Sorted(maps.Keys(usedImports))

	std := slices.DeleteFunc(slices.Clone(pkgs), func(pkg gen.PkgPath) bool { return !isStd(pkg) })
	other := slices.DeleteFunc(pkgs, isStd)

	buf.WriteString("import (\n")

	for i, group := range [][]gen.PkgPath{std, other} {
		if i > 0 && len(std) > 0 && len(group) > 0 {
			buf.WriteByte('\n')
		}

		for _, pkg := range group {
			buf.WriteByte('\t')

			alias := usedImports[pkg]
			if alias != "" {
				buf.WriteString(string(alias))
				buf.WriteByte(' ')
			}

			buf.WriteByte('"')
			buf.WriteString(string(pkg))
			buf.WriteString("\"\n")
		}
	}

	buf.WriteString(")\n")
}

// isStd reports whether the first path element has no dot.
func isStd(pkg gen.PkgPath) bool {
	first, _, _ := strings.Cut(string(pkg), "/")

	return !strings.Contains(first, ".")
}
