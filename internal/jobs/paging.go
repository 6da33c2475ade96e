package jobs

import "strconv"

// Ellipsis is the marker substituted for a skipped page range.
const Ellipsis = "..."

// PageRef is one element of the rendered pagination bar: either a page number
// or the ellipsis marker.
type PageRef struct {
	Page     int
	Ellipsis bool
}

// String renders the reference the way the pagination bar displays it.
func (p PageRef) String() string {
	if p.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(p.Page)
}

func page(n int) PageRef { return PageRef{Page: n} }
func ellipsis() PageRef  { return PageRef{Ellipsis: true} }

// PageNumbers generates the deterministic pagination window for the given
// state. All pages are shown when total is at most 7; otherwise the first and
// last page are always anchored and a contiguous window surrounds the current
// page, with ellipsis markers standing in for skipped ranges:
//
//	current <= 3:          1,2,3,4,...,last
//	current >= last-2:     1,...,last-3,last-2,last-1,last
//	otherwise:             1,...,current-1,current,current+1,...,last
func PageNumbers(currentPage, totalPages int) []PageRef {
	if totalPages <= 7 {
		refs := make([]PageRef, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			refs = append(refs, page(i))
		}
		return refs
	}

	refs := []PageRef{page(1)}

	switch {
	case currentPage <= 3:
		refs = append(refs, page(2), page(3), page(4), ellipsis(), page(totalPages))
	case currentPage >= totalPages-2:
		refs = append(refs, ellipsis(), page(totalPages-3), page(totalPages-2), page(totalPages-1), page(totalPages))
	default:
		refs = append(refs, ellipsis(), page(currentPage-1), page(currentPage), page(currentPage+1), ellipsis(), page(totalPages))
	}

	return refs
}
