package pagination

import "strconv"

// PageSize is the number of items on every page.
const PageSize = 10

// Page returns the 1-based page of items. Pages before the first or past the
// last yield an empty, non-nil slice.
func Page[T any](items []T, page int) []T {
	if page < 1 || page-1 >= pageCount(len(items)) {
		return []T{}
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))
	return items[start:end]
}

// FromQuery parses a page query value. Anything that is not an integer falls
// back to the first page.
func FromQuery(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

func pageCount(n int) int {
	return (n + PageSize - 1) / PageSize
}
