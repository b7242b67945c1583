// Package gen defines the contract between the ownsplit driver and the code
// generators it runs.
package gen

import "context"

// CmdPrefix starts every directive comment, e.g. "//ownsplit:split 3 4".
const CmdPrefix = "ownsplit:"

// Func generates files for all directive occurrences of one generator.
type Func func(ctx context.Context, name GeneratorName, pls []Please) ([]File, error)

// GeneratorName is the name a generator is registered under and invoked by,
// e.g. "split" for "//ownsplit:split".
type GeneratorName string

// Command returns the directive text that invokes the generator.
func (gn GeneratorName) Command() string {
	return CmdPrefix + string(gn)
}

// PkgPath is an import path.
type PkgPath string

// PkgName is an import alias, empty when the package is imported by its own name.
type PkgName string
