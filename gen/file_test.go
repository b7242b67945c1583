package gen_test

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/WinPooh32/ownsplit/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

func TestIsGenerated(t *testing.T) {
	t.Parallel()

	header := (&gen.Please{
		TS: &gen.TypeSpec{Pkg: &packages.Package{Name: "digits"}},
	}).FormatDoNotEditHeader("split")

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{name: "own header", src: header + "package digits\n", want: true},
		{name: "license above header", src: "// Copyright.\n\n" + header + "package digits\n", want: true},
		{name: "other generator", src: "// Code generated by mockgen. DO NOT EDIT.\n\npackage digits\n"},
		{name: "header after package", src: "package digits\n\n" + header},
		{name: "hand written", src: "// Package digits holds digits.\npackage digits\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := parser.ParseFile(token.NewFileSet(), "digits.go", tt.src, parser.ParseComments)
			require.NoError(t, err)

			assert.Equal(t, tt.want, gen.IsGenerated(file))
		})
	}
}
