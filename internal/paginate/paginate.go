// Package paginate slices in-memory lists into pages and builds the page
// link window shown under paginated lists.
package paginate

// Page sizes used by the list views.
const (
	NewsPerPage    = 6
	MembersPerPage = 10
)

// Page describes one page of a list of Total items.
type Page struct {
	Number     int
	PerPage    int
	Total      int
	TotalPages int
	Start      int
	End        int
}

// New clamps page into [1, TotalPages] and computes the slice bounds.
// TotalPages is at least 1 so an empty list still has a first page.
func New(total, page, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * perPage
	end := page * perPage
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}

	return Page{
		Number:     page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: pages,
		Start:      start,
		End:        end,
	}
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }

// Multi reports whether there is more than one page to navigate.
func (p Page) Multi() bool { return p.TotalPages > 1 }

// Showing returns the 1-based first item, last item and total, for the
// "Showing X to Y of Z" line. An empty list yields 0, 0, 0.
func (p Page) Showing() (from, to, total int) {
	if p.Total == 0 {
		return 0, 0, 0
	}
	return p.Start + 1, p.End, p.Total
}

// Slice returns the items on page p.
func Slice[T any](items []T, p Page) []T {
	start, end := p.Start, p.End
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return items[start:end]
}

// Link is one entry of the page window. Ellipsis entries carry no page.
type Link struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// Links returns the first page, the last page and the pages next to the
// current one, with an ellipsis wherever shown pages are not adjacent.
func (p Page) Links() []Link {
	var links []Link
	prev := 0
	for n := 1; n <= p.TotalPages; n++ {
		if n != 1 && n != p.TotalPages && (n < p.Number-1 || n > p.Number+1) {
			continue
		}
		if prev != 0 && n-prev > 1 {
			links = append(links, Link{Ellipsis: true})
		}
		links = append(links, Link{Page: n, Current: n == p.Number})
		prev = n
	}
	return links
}
