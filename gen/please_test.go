package gen_test

import (
	"testing"

	"github.com/WinPooh32/ownsplit/gen"
	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"
)

func TestPlease_FormatFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pls  gen.Please
		want string
	}{
		{
			name: "usual file",
			pls:  gen.Please{Filename: "/pkgname/digits.go"},
			want: "/pkgname/digits_split_gen.go",
		},
		{
			name: "test file",
			pls:  gen.Please{Filename: "/pkgname/digits_test.go"},
			want: "/pkgname/digits_split_gen_test.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pls := tt.pls
			assert.Equal(t, tt.want, pls.FormatFileName("split"))
		})
	}
}

func TestPlease_FormatGeneratorFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		test bool
		want string
	}{
		{name: "generated file", test: false, want: "/pkgname/split_gen.go"},
		{name: "generated test file", test: true, want: "/pkgname/split_gen_test.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pls := gen.Please{Filename: "/pkgname/digits.go"}
			assert.Equal(t, tt.want, pls.FormatGeneratorFileName("split", tt.test))
		})
	}
}

func TestPlease_IsTest(t *testing.T) {
	t.Parallel()

	assert.True(t, (&gen.Please{Filename: "/a/b_test.go"}).IsTest())
	assert.False(t, (&gen.Please{Filename: "/a/b.go"}).IsTest())
	assert.False(t, (&gen.Please{Filename: "/a/test.go"}).IsTest())
}

func TestPlease_Format(t *testing.T) {
	t.Parallel()

	pls := gen.Please{
		TS: &gen.TypeSpec{Pkg: &packages.Package{Name: "digits_test"}},
	}

	assert.Equal(t, "// Code generated by ownsplit:split; DO NOT EDIT.\n\n", pls.FormatDoNotEditHeader("split"))
	assert.Equal(t, "package digits_test\n\n", pls.FormatPkg())
	assert.Equal(t, "ownsplit:split", gen.GeneratorName("split").Command())
}
