package table_test

import (
	"os"
	"strings"
	"testing"

	splitgen "github.com/WinPooh32/ownsplit/generators/split"
	"github.com/WinPooh32/ownsplit/generators/table"
	"github.com/WinPooh32/ownsplit/internal/xtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_UpToDate(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile("../../split/table_gen.go")
	require.NoError(t, err)

	got, err := table.Generate("split", 8)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got), "run go generate ./split")
}

func TestGenerate_Functions(t *testing.T) {
	t.Parallel()

	got, err := table.Generate("tiny", 2)
	require.NoError(t, err)

	src := string(got)

	assert.True(t, strings.HasPrefix(src, "// Code generated by splittable; DO NOT EDIT.\n\npackage tiny\n"))

	for _, fn := range []string{
		"func Into0x0[T any](src *[0]T) (left [0]T, right [0]T)",
		"func Into0x1[T any](src *[1]T) (left [0]T, right [1]T)",
		"func Into1x0[T any](src *[1]T) (left [1]T, right [0]T)",
		"func Into0x2[T any](src *[2]T) (left [0]T, right [2]T)",
		"func Into1x1[T any](src *[2]T) (left [1]T, right [1]T)",
		"func Into2x0[T any](src *[2]T) (left [2]T, right [0]T)",
	} {
		assert.Contains(t, src, fn)
	}

	assert.Equal(t, 6, strings.Count(src, "\nfunc "))

	c := xtypes.NewChecker("../..")

	_, _, err = c.Check("tiny", map[string]string{"tiny_gen.go": src})
	assert.NoError(t, err)
}

func TestGenerate_NegativeMax(t *testing.T) {
	t.Parallel()

	_, err := table.Generate("split", -1)

	assert.ErrorIs(t, err, splitgen.ErrNegativeLength)
}
