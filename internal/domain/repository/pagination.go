package repository

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page is the common cursorless pagination input for list queries.
type Page struct {
	Number int // 1-based page number.
	Size   int // Rows per page, clamped to [1, 100].
}

// Normalize clamps the page to sane bounds so repositories never see a zero
// or runaway LIMIT.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}

	return p
}

// Offset returns the row offset for the normalized page.
func (p Page) Offset() int {
	p = p.Normalize()

	return (p.Number - 1) * p.Size
}

// Paged bundles one page of results with the total row count.
type Paged[T any] struct {
	Items  []T
	Total  int64
	Number int
	Size   int
}
