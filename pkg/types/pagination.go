package types

// Pagination represents pagination metadata derived from a total count.
type Pagination struct {
	TotalCount    uint64  `json:"total_count"`
	CurrentPage   uint64  `json:"current_page"`
	Limit         uint64  `json:"limit"`
	NumberOfPages uint64  `json:"number_of_pages"`
	NextPage      *uint64 `json:"next_page,omitempty"`
	PreviousPage  *uint64 `json:"previous_page,omitempty"`
}

// ComputePagination derives page metadata from page, limit and total count.
// NumberOfPages is ceil(total/limit) and 0 when total is 0. NextPage exists
// iff page*limit < total. PreviousPage exists iff page > 1; it is not checked
// against NumberOfPages, so a page requested far past the end still reports
// the previous page.
func ComputePagination(page, limit, totalCount uint64) Pagination {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 1
	}

	p := Pagination{
		TotalCount:    totalCount,
		CurrentPage:   page,
		Limit:         limit,
		NumberOfPages: (totalCount + limit - 1) / limit,
	}

	if page*limit < totalCount {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PreviousPage = &prev
	}
	return p
}
