package ownsplit

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/WinPooh32/ownsplit/gen"
	"golang.org/x/tools/go/packages"
)

// pkgerrs reports every package that failed to load or type-check.
type pkgerrs []*packages.Package

func (pkgs *pkgerrs) Error() string {
	errs := make([]error, 0, len(*pkgs))

	for _, pkg := range *pkgs {
		var perrs []error

		if len(pkg.Errors) > 0 {
			ee := make([]error, 0, len(pkg.Errors))
			for _, err := range pkg.Errors {
				ee = append(ee, err)
			}

			perrs = append(perrs, fmt.Errorf("\tmetadata: %w", errors.Join(ee...)))
		}

		if len(pkg.TypeErrors) > 0 {
			et := make([]error, 0, len(pkg.TypeErrors))
			for _, err := range pkg.TypeErrors {
				et = append(et, err)
			}

			perrs = append(perrs, fmt.Errorf("\ttypes: %w", errors.Join(et...)))
		}

		errs = append(errs, fmt.Errorf("package %s:\n%w", pkg.PkgPath, errors.Join(perrs...)))
	}

	return errors.Join(errs...).Error()
}

// dropGeneratedErrors removes errors reported in files written by ownsplit
// generators: such files are stale until regenerated and must not block it.
// Reports whether the package still has errors.
func dropGeneratedErrors(pkg *packages.Package) bool {
	generated := map[string]struct{}{}

	for _, file := range pkg.Syntax {
		if gen.IsGenerated(file) {
			generated[filepath.Base(pkg.Fset.File(file.Pos()).Name())] = struct{}{}
		}
	}

	if len(generated) == 0 {
		return len(pkg.Errors) > 0 || len(pkg.TypeErrors) > 0
	}

	// Files of a package share one directory, list errors may carry relative positions.
	isGenerated := func(filename string) bool {
		if filename == "" {
			return false
		}

		_, ok := generated[filepath.Base(filename)]

		return ok
	}

	pkg.Errors = slices.DeleteFunc(pkg.Errors, func(err packages.Error) bool {
		return isGenerated(errorFilename(err.Pos))
	})

	pkg.TypeErrors = slices.DeleteFunc(pkg.TypeErrors, func(err types.Error) bool {
		return isGenerated(err.Fset.Position(err.Pos).Filename)
	})

	return len(pkg.Errors) > 0 || len(pkg.TypeErrors) > 0
}

// errorFilename strips the line and column from a "file:line:col" position.
func errorFilename(pos string) string {
	for range 2 {
		i := strings.LastIndexByte(pos, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(pos[i+1:]); err != nil {
			break
		}

		pos = pos[:i]
	}

	if pos == "-" {
		return ""
	}

	return pos
}
