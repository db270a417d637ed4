package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPage(t *testing.T) {
	items := seq(19)

	tests := []struct {
		name string
		page int
		want []int
	}{
		{name: "first page", page: 1, want: seq(10)},
		{name: "last partial page", page: 2, want: []int{11, 12, 13, 14, 15, 16, 17, 18, 19}},
		{name: "past the end", page: 3, want: []int{}},
		{name: "far past the end", page: 1 << 40, want: []int{}},
		{name: "zero", page: 0, want: []int{}},
		{name: "negative", page: -2, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(items, tt.page)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageMatchesWindow(t *testing.T) {
	items := seq(35)
	for p := 1; p <= 4; p++ {
		start := (p - 1) * PageSize
		end := min(p*PageSize, len(items))
		assert.Equal(t, items[start:end], Page(items, p), "page %d", p)
	}
}

func TestPageEmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, Page[string](nil, 1))
}

func TestFromQuery(t *testing.T) {
	assert.Equal(t, 1, FromQuery(""))
	assert.Equal(t, 1, FromQuery("abc"))
	assert.Equal(t, 2, FromQuery("2"))
	assert.Equal(t, 0, FromQuery("0"))
}
