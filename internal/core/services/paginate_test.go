package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFetch serves fixed pages in order, keyed by cursor.
func pagedFetch(pages [][]int) PageFunc[int] {
	return func(cursor string) ([]int, string, bool, error) {
		idx := 0
		if cursor != "" {
			fmt.Sscanf(cursor, "c%d", &idx)
		}
		more := idx+1 < len(pages)
		next := ""
		if more {
			next = fmt.Sprintf("c%d", idx+1)
		}
		return pages[idx], next, more, nil
	}
}

func TestFetchAll(t *testing.T) {
	t.Run("concatenates pages in order with no drops or duplicates", func(t *testing.T) {
		tests := []struct {
			name  string
			pages [][]int
			want  []int
		}{
			{"single page", [][]int{{1, 2, 3}}, []int{1, 2, 3}},
			{"even boundaries", [][]int{{1, 2}, {3, 4}, {5, 6}}, []int{1, 2, 3, 4, 5, 6}},
			{"ragged boundaries", [][]int{{1}, {2, 3, 4}, {5}}, []int{1, 2, 3, 4, 5}},
			{"empty middle page", [][]int{{1, 2}, {}, {3}}, []int{1, 2, 3}},
			{"single empty page", [][]int{{}}, nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := FetchAll(pagedFetch(tt.pages))
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("error propagates unmodified with no partial result", func(t *testing.T) {
		boom := errors.New("transport down")
		calls := 0
		got, err := FetchAll(func(cursor string) ([]int, string, bool, error) {
			calls++
			if calls == 2 {
				return nil, "", false, boom
			}
			return []int{calls}, "next", true, nil
		})

		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})

	t.Run("cursor advances across every boundary", func(t *testing.T) {
		var cursors []string
		_, err := FetchAll(func(cursor string) ([]int, string, bool, error) {
			cursors = append(cursors, cursor)
			if len(cursors) == 3 {
				return []int{3}, "", false, nil
			}
			return []int{len(cursors)}, fmt.Sprintf("c%d", len(cursors)), true, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"", "c1", "c2"}, cursors)
	})
}
