package app

// Page holds one bounded slice of an ordered result set, identified by a
// 1-based page number, plus the metadata templates need to render the
// pager.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"number"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
	PrevNumber int  `json:"prevNumber"`
	NextNumber int  `json:"nextNumber"`
}

// Paginate slices items into pages of the given size and returns the
// requested page. Numbers below 1 or past the end clamp to the nearest
// valid page; an empty input yields a single empty page.
func Paginate[T any](items []T, number, size int) *Page[T] {
	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	} else if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return &Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
		PrevNumber: number - 1,
		NextNumber: number + 1,
	}
}
