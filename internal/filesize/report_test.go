package filesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizesOf(entries []Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.Size
	}

	return out
}

func TestBuildOrder(t *testing.T) {
	sizes := Sizes{"a.txt": 10, "b/c.bin": 1024, "d.md": 100}

	assert.Equal(t, []int64{1024, 100, 10}, sizesOf(Build(sizes, false, NoLimit)))
	assert.Equal(t, []int64{10, 100, 1024}, sizesOf(Build(sizes, true, NoLimit)))
}

func TestBuildLimit(t *testing.T) {
	sizes := Sizes{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}

	tests := []struct {
		name  string
		asc   bool
		limit int
		want  []int64
	}{
		{name: "two largest", asc: false, limit: 2, want: []int64{5, 4}},
		{name: "two smallest", asc: true, limit: 2, want: []int64{1, 2}},
		{name: "no limit", asc: false, limit: NoLimit, want: []int64{5, 4, 3, 2, 1}},
		{name: "limit above length", asc: true, limit: 10, want: []int64{1, 2, 3, 4, 5}},
		{name: "zero keeps nothing", asc: false, limit: 0, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(sizes, tt.asc, tt.limit)

			assert.Equal(t, tt.want, sizesOf(got))
		})
	}
}

func TestBuildTieBreakByPath(t *testing.T) {
	sizes := Sizes{"z": 7, "a": 7, "m": 7, "big": 9}

	desc := Build(sizes, false, NoLimit)
	require.Len(t, desc, 4)
	assert.Equal(t, []string{"big", "a", "m", "z"}, []string{desc[0].Path, desc[1].Path, desc[2].Path, desc[3].Path})

	asc := Build(sizes, true, NoLimit)
	require.Len(t, asc, 4)
	assert.Equal(t, []string{"a", "m", "z", "big"}, []string{asc[0].Path, asc[1].Path, asc[2].Path, asc[3].Path})
}

func TestBuildEmpty(t *testing.T) {
	entries := Build(Sizes{}, false, NoLimit)

	assert.Empty(t, entries)
	assert.Empty(t, Lines(entries))
}

func TestLines(t *testing.T) {
	entries := Build(Sizes{"docs/readme.md": 1536, "main.go": 512}, false, NoLimit)

	assert.Equal(t, []string{"docs/readme.md, 1.5KiB", "main.go, 512.0B"}, Lines(entries))
}
