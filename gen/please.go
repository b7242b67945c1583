package gen

import (
	"path/filepath"
	"strings"
)

const testSuffix = "_test"

// Please is a single directive occurrence: "please, generate this for me".
type Please struct {
	// Filename is the absolute path of the file holding the directive.
	Filename string
	Args     []string
	TS       *TypeSpec
	// Imports maps import paths of the directive's file to their aliases.
	Imports map[PkgPath]PkgName
}

// FormatFileName formats absolute path for a new destination file
// next to the file holding the directive.
func (pls *Please) FormatFileName(name GeneratorName) (filename string) {
	dir := filepath.Dir(pls.Filename)

	basename := strings.TrimSuffix(filepath.Base(pls.Filename), ".go")

	var suffix string

	if strings.HasSuffix(basename, testSuffix) {
		basename = strings.TrimSuffix(basename, testSuffix)
		suffix = "_gen_test.go"
	} else {
		suffix = "_gen.go"
	}

	filename = filepath.Join(dir, basename+"_"+string(name)+suffix)

	return filename
}

// FormatGeneratorFileName formats absolute path for a destination file
// named after the generator.
func (pls *Please) FormatGeneratorFileName(name GeneratorName, test bool) (filename string) {
	dir := filepath.Dir(pls.Filename)

	if test {
		filename = filepath.Join(dir, string(name)+"_gen_test.go")
	} else {
		filename = filepath.Join(dir, string(name)+"_gen.go")
	}

	return filename
}

// IsTest reports whether the directive lives in a _test.go file.
func (pls *Please) IsTest() bool {
	return strings.HasSuffix(pls.Filename, testSuffix+".go")
}

// FormatDoNotEditHeader returns the standard generated code header.
func (pls *Please) FormatDoNotEditHeader(name GeneratorName) string {
	return "// Code generated by " + name.Command() + "; DO NOT EDIT.\n\n"
}

// FormatPkg returns the package clause of the directive's package.
func (pls *Please) FormatPkg() string {
	return "package " + pls.TS.Pkg.Name + "\n\n"
}
