package split

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"github.com/WinPooh32/ownsplit/gen"
)

var errNotArray = errors.New("type must be a defined array type")

type splitInfo struct {
	Method string
	Plan   Plan
}

type arrayInfo struct {
	names

	Name       string
	TypeParams string
	Elem       string
	N          int
	Splits     []splitInfo

	typeParamNames []string
}

// analyze resolves the array type the directive is attached to.
// Qualifiers written into the element type are recorded in qualifiers.
func analyze(pls gen.Please, usedImports map[gen.PkgPath]gen.PkgName, qualifiers nameSet) (arrayInfo, error) {
	name := pls.TS.Spec.Name.Name

	if pls.TS.Spec.Assign.IsValid() {
		return arrayInfo{}, fmt.Errorf("%w: %q is an alias", errNotArray, name)
	}

	object := pls.TS.Pkg.TypesInfo.Defs[pls.TS.Spec.Name]
	if object == nil {
		return arrayInfo{}, fmt.Errorf("object %s not found", name)
	}

	if object.Parent() != pls.TS.Pkg.Types.Scope() {
		return arrayInfo{}, fmt.Errorf("%w: %q is not declared at package level", errNotArray, name)
	}

	typ, ok := object.Type().(*types.Named)
	if !ok {
		return arrayInfo{}, fmt.Errorf("unexpected type %T", object.Type())
	}

	arr, ok := typ.Underlying().(*types.Array)
	if !ok {
		return arrayInfo{}, fmt.Errorf("%w: %q is %s", errNotArray, name, typ.Underlying())
	}

	pkgAliasFn := alias(pls.TS.Pkg.Types, pls.Imports, usedImports)

	qualify := func(p *types.Package) string {
		q := pkgAliasFn(p)
		if q != "" {
			qualifiers.add(q)
		}

		return q
	}

	paramNames := typeParamNames(typ)

	return arrayInfo{
		Name:           name,
		TypeParams:     formatTypeParams(paramNames),
		Elem:           types.TypeString(arr.Elem(), qualify),
		N:              int(arr.Len()),
		typeParamNames: paramNames,
	}, nil
}

func alias(
	pkg *types.Package,
	imports map[gen.PkgPath]gen.PkgName,
	usedImports map[gen.PkgPath]gen.PkgName,
) types.Qualifier {
	return func(p *types.Package) string {
		if pkg == p {
			// local imports are unqualified.
			return ""
		}

		path := gen.PkgPath(p.Path())
		alias := imports[path]

		// Populate imports used by generated methods.
		// Include empty alias too.
		if usedImports != nil {
			usedImports[path] = alias
		}

		switch alias {
		case "":
			return p.Name()
		case ".":
			return ""
		}

		return string(alias)
	}
}

func typeParamNames(typ *types.Named) []string {
	params := make([]string, 0, typ.TypeParams().Len())

	for i := range typ.TypeParams().Len() {
		params = append(params, typ.TypeParams().At(i).Obj().Name())
	}

	return params
}

// formatTypeParams formats the receiver type parameter list, e.g. "[K, V]".
// Constraints are not repeated in receivers, so no imports are recorded.
func formatTypeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}

	return "[" + strings.Join(params, ", ") + "]"
}
