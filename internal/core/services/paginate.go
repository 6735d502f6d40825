package services

// PageFunc fetches one page of items for the given cursor. It returns
// the items, the cursor for the next page, and whether more pages remain.
type PageFunc[T any] func(cursor string) (items []T, next string, more bool, err error)

// FetchAll follows cursors until the store reports no more pages and
// returns the concatenation of all pages in returned order. Items are
// never dropped or duplicated across a cursor boundary. The first error
// propagates unmodified with no partial result.
func FetchAll[T any](fetch PageFunc[T]) ([]T, error) {
	var all []T
	cursor := ""
	for {
		items, next, more, err := fetch(cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if !more {
			return all, nil
		}
		cursor = next
	}
}
