package store_test

import (
	"testing"

	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/stretchr/testify/require"
)

func TestListQueryNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   store.ListQuery
		want store.ListQuery
	}{
		{"defaults", store.ListQuery{}, store.ListQuery{Page: 1, PerPage: 5}},
		{"negative page", store.ListQuery{Page: -3, PerPage: 10}, store.ListQuery{Page: 1, PerPage: 10}},
		{"zero per page", store.ListQuery{Page: 2, PerPage: 0}, store.ListQuery{Page: 2, PerPage: 5}},
		{"trims search", store.ListQuery{Search: "  silva "}, store.ListQuery{Search: "silva", Page: 1, PerPage: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestListQueryPaging(t *testing.T) {
	q := store.ListQuery{Page: 2, PerPage: 5}.Normalize()
	require.Equal(t, 5, q.Offset())
	require.Equal(t, 3, q.Pages(12))
	require.Equal(t, 2, q.Pages(10))
	require.Equal(t, 0, q.Pages(0))
}

func TestLikePattern(t *testing.T) {
	require.Equal(t, "%%", store.LikePattern(""))
	require.Equal(t, "%silva%", store.LikePattern("Silva"))
	require.Equal(t, `%100\%%`, store.LikePattern("100%"))
	require.Equal(t, `%a\_b%`, store.LikePattern("a_b"))
	require.Equal(t, `%c:\\x%`, store.LikePattern(`c:\x`))
}
