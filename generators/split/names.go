package split

import (
	"go/types"
	"strconv"
)

// ownAliases are tried in order for the import of the relocation package.
var ownAliases = []string{"own", "ownsplitown"}

// names are the identifiers a generated method declares or refers to.
type names struct {
	Own   string
	Recv  string
	Src   string
	Left  string
	Right string
}

type nameSet map[string]struct{}

func (ns nameSet) has(name string) bool {
	_, ok := ns[name]
	return ok
}

func (ns nameSet) add(name string) {
	ns[name] = struct{}{}
}

// takenNames collects identifiers the generated file cannot shadow or redeclare:
// package level declarations and qualifiers of imported packages.
func takenNames(scope *types.Scope, qualifiers nameSet) nameSet {
	taken := nameSet{}

	for _, name := range scope.Names() {
		taken.add(name)
	}

	for name := range qualifiers {
		taken.add(name)
	}

	return taken
}

// free returns the first candidate not in taken, numbering the last one when all are taken.
func (ns nameSet) free(candidates ...string) string {
	for _, name := range candidates {
		if !ns.has(name) {
			return name
		}
	}

	last := candidates[len(candidates)-1]

	for i := 2; ; i++ {
		name := last + strconv.Itoa(i)
		if !ns.has(name) {
			return name
		}
	}
}

// localNames picks receiver and local names for one array type.
// Type parameters of the type are visible in the method body too.
func localNames(taken nameSet, own string, typeParams []string) names {
	local := nameSet{own: {}}

	for name := range taken {
		local.add(name)
	}

	for _, name := range typeParams {
		local.add(name)
	}

	pick := func(candidates ...string) string {
		name := local.free(candidates...)
		local.add(name)

		return name
	}

	return names{
		Own:   own,
		Recv:  pick("a", "arr"),
		Src:   pick("src"),
		Left:  pick("left"),
		Right: pick("right"),
	}
}
