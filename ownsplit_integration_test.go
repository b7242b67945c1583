package ownsplit_test

import (
	"cmp"
	"context"
	_ "embed"
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/WinPooh32/ownsplit"
	"github.com/WinPooh32/ownsplit/gen"
	"github.com/WinPooh32/ownsplit/generators/split"
	"github.com/WinPooh32/ownsplit/opt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	//go:embed testdata/arrays_split_gen.txt
	testSplitGeneratedCode []byte
	//go:embed testdata/arrays_split_gen_test.txt
	testSplitGeneratedTestCode []byte
)

func mustLoad(t *testing.T, dir string, patterns ...string) *ownsplit.Generator {
	t.Helper()

	g, err := ownsplit.NewGenerator()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = g.Load(ctx, dir, patterns...)
	require.NoError(t, err)

	return g
}

func collect(t *testing.T, resC <-chan opt.Result[gen.File]) ([]gen.File, error) {
	t.Helper()

	var (
		files []gen.File
		err   error
	)

	for res := range resC {
		if res.Err != nil {
			err = res.Err
			continue
		}

		files = append(files, res.Ok)
	}

	slices.SortFunc(files, func(a, b gen.File) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return files, err
}

type directive struct {
	Type string   `json:"type"`
	File string   `json:"file"`
	Args []string `json:"args"`
}

// recorder reports the directives it received as a JSON file.
func recorder(_ context.Context, name gen.GeneratorName, pp []gen.Please) ([]gen.File, error) {
	dirs := make([]directive, 0, len(pp))

	for _, pls := range pp {
		dirs = append(dirs, directive{
			Type: pls.TS.Spec.Name.Name,
			File: filepath.Base(pls.Filename),
			Args: pls.Args,
		})
	}

	slices.SortFunc(dirs, func(a, b directive) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Type, b.Type),
			slices.Compare(a.Args, b.Args),
		)
	})

	data, err := json.Marshal(dirs)
	if err != nil {
		return nil, err
	}

	return []gen.File{{
		Name: pp[0].FormatGeneratorFileName(name, pp[0].IsTest()),
		Data: data,
	}}, nil
}

func TestGenerator_Generate_Directives(t *testing.T) {
	t.Parallel()

	g := mustLoad(t, "internal/_testdata/arrays", "./...")

	files, err := collect(t, g.Generate(context.Background(), 2, map[gen.GeneratorName]gen.Func{
		"split": recorder,
	}))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "split_gen.go", filepath.Base(files[0].Name))
	assert.JSONEq(t, `[
		{"type": "Digits", "file": "arrays.go", "args": ["0", "7", "--name", "Detach"]},
		{"type": "Digits", "file": "arrays.go", "args": ["3", "4"]},
		{"type": "Ring", "file": "arrays.go", "args": ["2", "3"]},
		{"type": "Timeouts", "file": "arrays.go", "args": ["1", "1"]}
	]`, string(files[0].Data))

	assert.Equal(t, "split_gen_test.go", filepath.Base(files[1].Name))
	assert.JSONEq(t, `[
		{"type": "trio", "file": "arrays_test.go", "args": ["1", "2"]}
	]`, string(files[1].Data))
}

func TestGenerator_Generate_Split(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		jobs int
	}{
		{name: "single job", jobs: 1},
		{name: "default jobs", jobs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := mustLoad(t, "internal/_testdata/arrays", "./...")

			files, err := collect(t, g.Generate(context.Background(), tt.jobs, map[gen.GeneratorName]gen.Func{
				"split": split.Generate,
			}))
			require.NoError(t, err)
			require.Len(t, files, 2)

			assert.Equal(t, filepath.Join("arrays", "arrays_split_gen.go"), lastTwo(files[0].Name))
			assert.Equal(t, string(testSplitGeneratedCode), string(files[0].Data))

			assert.Equal(t, filepath.Join("arrays", "arrays_split_gen_test.go"), lastTwo(files[1].Name))
			assert.Equal(t, string(testSplitGeneratedTestCode), string(files[1].Data))
		})
	}
}

func TestGenerator_Generate_ArityMismatch(t *testing.T) {
	t.Parallel()

	g := mustLoad(t, "internal/_testdata/mismatch", "./...")

	files, err := collect(t, g.Generate(context.Background(), 1, map[gen.GeneratorName]gen.Func{
		"split": split.Generate,
	}))

	require.ErrorIs(t, err, split.ErrArityMismatch)
	assert.ErrorContains(t, err, "7 != 2 + 4")
	assert.ErrorContains(t, err, "mismatch.go:4:6")
	assert.Empty(t, files)
}

func TestGenerator_Generate_Canceled(t *testing.T) {
	t.Parallel()

	g := mustLoad(t, "internal/_testdata/arrays", "./...")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collect(t, g.Generate(ctx, 1, map[gen.GeneratorName]gen.Func{
		"split": split.Generate,
	}))

	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Load_Errors(t *testing.T) {
	t.Parallel()

	g, err := ownsplit.NewGenerator()
	require.NoError(t, err)

	_, err = g.Load(context.Background(), "internal/_testdata/arrays", "./nosuchpkg")
	require.Error(t, err)
	assert.Zero(t, g.Len())
}

func TestGenerator_Generate_StaleOutput(t *testing.T) {
	t.Parallel()

	g := mustLoad(t, "internal/_testdata/drift", "./...")
	require.Equal(t, 1, g.Len())

	files, err := collect(t, g.Generate(context.Background(), 1, map[gen.GeneratorName]gen.Func{
		"split": split.Generate,
	}))
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, filepath.Join("drift", "drift_split_gen.go"), lastTwo(files[0].Name))
	assert.Contains(t, string(files[0].Data), "func (a *Digits) Split3x5() (left [3]int, right [5]int) {")
	assert.Contains(t, string(files[0].Data), "src := (*[3 + 5]int)(a)")
	assert.NotContains(t, string(files[0].Data), "Split3x4")
}

func TestGenerator_Load_HandWrittenErrors(t *testing.T) {
	t.Parallel()

	g, err := ownsplit.NewGenerator()
	require.NoError(t, err)

	_, err = g.Load(context.Background(), "internal/_testdata/broken", "./...")
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken.go:3")
	assert.NotContains(t, err.Error(), "broken_split_gen.go")
	assert.Zero(t, g.Len())
}

func lastTwo(name string) string {
	return filepath.Join(filepath.Base(filepath.Dir(name)), filepath.Base(name))
}
