package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "marketplace-system/pkg/errors"
	"marketplace-system/pkg/types"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// reservedKeys never become filters, whatever the resource schema says.
var reservedKeys = map[string]bool{
	"page":    true,
	"sort":    true,
	"limit":   true,
	"fields":  true,
	"keyword": true,
}

var comparisonOps = map[string]types.FilterOp{
	"gt":  types.FilterOpGt,
	"gte": types.FilterOpGte,
	"lt":  types.FilterOpLt,
	"lte": types.FilterOpLte,
	"in":  types.FilterOpIn,
}

// ParseQuerySpec turns raw request parameters into a QuerySpec. Reserved keys
// (page, sort, limit, fields, keyword) are stripped before the remainder is
// treated as filters. A plain value becomes an equality filter; the nested
// syntax field[op]=value becomes a comparison filter. An unknown operator
// token fails closed with ErrInvalidQueryParameter.
func ParseQuerySpec(values url.Values, defaultLimit uint64) (types.QuerySpec, error) {
	if defaultLimit == 0 {
		defaultLimit = DefaultLimit
	}

	spec := types.QuerySpec{
		Filters: make(map[string][]types.FilterValue),
		Page:    1,
		Limit:   defaultLimit,
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			spec.Page = p
		}
	}
	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				spec.Limit = MaxLimit
			} else {
				spec.Limit = l
			}
		}
	}

	if sort := values.Get("sort"); sort != "" {
		for _, field := range strings.Split(sort, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			key := types.SortKey{Field: field}
			if strings.HasPrefix(field, "-") {
				key.Field = field[1:]
				key.Desc = true
			}
			spec.Sort = append(spec.Sort, key)
		}
	}

	if fields := values.Get("fields"); fields != "" {
		for _, f := range strings.Split(fields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				spec.Fields = append(spec.Fields, f)
			}
		}
	}

	spec.Keyword = values.Get("keyword")

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		if reservedKeys[key] {
			continue
		}

		// field[op]=value
		if open := strings.Index(key, "["); open > 0 && strings.HasSuffix(key, "]") {
			field := key[:open]
			opToken := key[open+1 : len(key)-1]
			op, ok := comparisonOps[opToken]
			if !ok {
				return spec, apperrors.NewHttpError(
					400,
					fmt.Sprintf("unknown filter operator '%s' for field '%s'", opToken, field),
					apperrors.ErrInvalidQueryParameter,
					map[string]interface{}{"key": key},
				)
			}
			if op == types.FilterOpIn {
				spec.Filters[field] = append(spec.Filters[field], types.FilterValue{Op: op, Values: strings.Split(vals[0], ",")})
			} else {
				spec.Filters[field] = append(spec.Filters[field], types.FilterValue{Op: op, Value: vals[0]})
			}
			continue
		}

		spec.Filters[key] = append(spec.Filters[key], types.FilterValue{Op: types.FilterOpEq, Value: vals[0]})
	}

	return spec, nil
}
