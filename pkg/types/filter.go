package types

// FilterOp identifies how a filter value is compared against a column.
type FilterOp string

const (
	FilterOpEq  FilterOp = "eq"
	FilterOpGt  FilterOp = "gt"
	FilterOpGte FilterOp = "gte"
	FilterOpLt  FilterOp = "lt"
	FilterOpLte FilterOp = "lte"
	FilterOpIn  FilterOp = "in"
)

// FilterValue is a tagged variant decided once at parse time. Op tells which
// member carries the payload: Values for FilterOpIn, Value for everything else.
type FilterValue struct {
	Op     FilterOp
	Value  string
	Values []string
}

// SortKey is one (field, direction) pair of a sort specification.
type SortKey struct {
	Field string
	Desc  bool
}

// QuerySpec is the parsed representation of a list/search request:
// filtering, sorting, projection, keyword search and pagination intent.
// It is built once per request and discarded after the response.
type QuerySpec struct {
	// Filters maps a field name to its conditions. A field carries more than
	// one entry when a range is requested (price[gte]=10&price[lte]=50).
	Filters map[string][]FilterValue `json:"filters,omitempty"`
	Sort    []SortKey                `json:"sort,omitempty"`
	Fields  []string                 `json:"fields,omitempty"`
	Keyword string                   `json:"keyword,omitempty"`
	Page    uint64                   `json:"page"`
	Limit   uint64                   `json:"limit"`
}

// Offset returns the number of records skipped before the current page.
func (q QuerySpec) Offset() uint64 {
	if q.Page == 0 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// http://localhost:8080/api/uploads?keyword=sunset&sort=-created_at,title&filter... e.g. price[gte]=10&price[lte]=50&category=photography&page=2&limit=20
