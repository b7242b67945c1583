package split_test

import (
	"testing"

	"github.com/WinPooh32/ownsplit/internal/xtypes"
	"github.com/stretchr/testify/assert"
)

func TestInto_BuildTimeLengths(t *testing.T) {
	t.Parallel()

	const header = `package p

import "github.com/WinPooh32/ownsplit/split"

`

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "lengths add up",
			body: `func f() ([3]int, [4]int) {
	arr := [7]int{0, 1, 2, 3, 4, 5, 6}
	return split.Into3x4(&arr)
}`,
		},
		{
			name: "lengths inferred from bindings",
			body: `func f() {
	arr := [7]int{}
	var (
		left  [3]int
		right [4]int
	)
	left, right = split.Into3x4(&arr)
	_, _ = left, right
}`,
		},
		{
			name: "K + L less than N",
			body: `func f() {
	arr := [7]int{}
	_, _ = split.Into2x4(&arr)
}`,
			wantErr: "*[7]int",
		},
		{
			name: "K + L greater than N",
			body: `func f() {
	arr := [7]int{}
	_, _ = split.Into4x4(&arr)
}`,
			wantErr: "*[7]int",
		},
		{
			name: "bindings of other lengths",
			body: `func f() {
	arr := [7]int{}
	var (
		left  [2]int
		right [4]int
	)
	left, right = split.Into3x4(&arr)
	_, _ = left, right
}`,
			wantErr: "[2]int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := xtypes.NewChecker("..")

			_, _, err := c.Check("p", map[string]string{"p.go": header + tt.body + "\n"})

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
