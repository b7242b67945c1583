// Package table renders the pre-generated split functions of package
// github.com/WinPooh32/ownsplit/split: one generic function per (K, L)
// pair for every array length up to a limit.
package table

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/WinPooh32/ownsplit/generators/split"
)

// FuncPrefix starts every generated function name, e.g. "Into3x4".
const FuncPrefix = "Into"

//nolint:lll
const tmplText = `// Code generated by splittable; DO NOT EDIT.

package {{.Pkg}}

import "{{.Own}}"
{{range .Plans}}
// {{.Name $.Prefix}} moves the first {{.K}} elements of src into left and the remaining {{.L}} into right.
// Every element of src is zeroed afterwards.
func {{.Name $.Prefix}}[T any](src *[{{.N}}]T) (left [{{.K}}]T, right [{{.L}}]T) {
	own.Relocate(left[:], src[:{{.K}}])
	own.Relocate(right[:], src[{{.K}}:])

	return left, right
}
{{end}}`

var tmpl = template.Must(template.New("table").Parse(tmplText))

// Generate renders the split functions of every array length in [0, maxN].
func Generate(pkg string, maxN int) ([]byte, error) {
	plans, err := split.Plans(maxN)
	if err != nil {
		return nil, fmt.Errorf("plans: %w", err)
	}

	buf := bytes.NewBuffer(nil)

	data := struct {
		Pkg    string
		Own    string
		Prefix string
		Plans  []split.Plan
	}{
		Pkg:    pkg,
		Own:    string(split.OwnPkgPath),
		Prefix: FuncPrefix,
		Plans:  plans,
	}

	if err := tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return split.Format(pkg+"_gen.go", buf.Bytes())
}
