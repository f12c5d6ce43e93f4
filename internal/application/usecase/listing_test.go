package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/progress-api/internal/application/dto"
)

func TestLoadMore(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	cases := []struct {
		name string
		page int
		want []int
		meta dto.LoadMoreMeta
	}{
		{"primera página", 1, []int{1, 2}, dto.LoadMoreMeta{Page: 1, PageSize: 2, Shown: 2, Total: 5, HasMore: true}},
		{"página cero se trata como 1", 0, []int{1, 2}, dto.LoadMoreMeta{Page: 1, PageSize: 2, Shown: 2, Total: 5, HasMore: true}},
		{"acumulativa", 2, []int{1, 2, 3, 4}, dto.LoadMoreMeta{Page: 2, PageSize: 2, Shown: 4, Total: 5, HasMore: true}},
		{"última parcial", 3, items, dto.LoadMoreMeta{Page: 3, PageSize: 2, Shown: 5, Total: 5}},
		{"más allá del final", 10, items, dto.LoadMoreMeta{Page: 10, PageSize: 2, Shown: 5, Total: 5}},
		{"página enorme no desborda", math.MaxInt, items, dto.LoadMoreMeta{Page: math.MaxInt, PageSize: 2, Shown: 5, Total: 5}},
		{"1<<62", 1 << 62, items, dto.LoadMoreMeta{Page: 1 << 62, PageSize: 2, Shown: 5, Total: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, meta := loadMore(items, tc.page, 2)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.meta, meta)
		})
	}
}

func TestLoadMore_Vacio(t *testing.T) {
	got, meta := loadMore([]string{}, math.MaxInt, 30)
	assert.Empty(t, got)
	assert.Equal(t, 0, meta.Shown)
	assert.False(t, meta.HasMore)
}

func TestMatchesQuery(t *testing.T) {
	assert.True(t, matchesQuery("", "x"))
	assert.True(t, matchesQuery("PICK", "Pick box"))
	assert.True(t, matchesQuery(" ", "Pick box"), "el espacio es parte de la búsqueda")
	assert.False(t, matchesQuery(" ", "Idle"), "solo espacios no coincide con todo")
	assert.False(t, matchesQuery(" idle", "Idle"))
}
