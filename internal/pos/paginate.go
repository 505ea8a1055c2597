package pos

const (
	DefaultPageSize = 5
	// MaxVisiblePages bounds the pager window shown next to a listing.
	MaxVisiblePages = 5
)

// Paginate returns page number page (1-based) of items. Pages past the end
// are empty.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// TotalPages is ceil(n/size), never less than 1 so an empty listing still
// renders a single page.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// PageWindow returns up to maxVisible consecutive page numbers around current.
func PageWindow(current, total, maxVisible int) []int {
	if maxVisible <= 0 {
		maxVisible = MaxVisiblePages
	}
	if total < 1 {
		total = 1
	}
	current = max(1, min(current, total))
	start := max(1, current-maxVisible/2)
	end := min(total, start+maxVisible-1)
	if end-start+1 < maxVisible {
		start = max(1, end-maxVisible+1)
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
