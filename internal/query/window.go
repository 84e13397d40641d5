package query

import "math"

// Window is the zero-indexed, inclusive row range of one page
type Window struct {
	From int
	To   int
}

// NewWindow maps a 1-indexed page to its row range. Callers must pass
// page >= 1 and pageSize >= 1 with WindowFits(page, pageSize).
func NewWindow(page, pageSize int) Window {
	from := (page - 1) * pageSize
	return Window{
		From: from,
		To:   from + pageSize - 1,
	}
}

// WindowFits reports whether page*pageSize is representable, so that
// both ends of the window are non-negative ints.
func WindowFits(page, pageSize int) bool {
	if page < 1 || pageSize < 1 {
		return false
	}
	return page <= math.MaxInt/pageSize
}

// Offset is the number of rows to skip
func (w Window) Offset() int {
	return w.From
}

// Limit is the number of rows in the window
func (w Window) Limit() int {
	return w.To - w.From + 1
}

// TotalPages returns ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
