package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-system/pkg/types"
)

func TestParseQuerySpec_Defaults(t *testing.T) {
	spec, err := ParseQuerySpec(url.Values{}, 0)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), spec.Page)
	assert.Equal(t, uint64(DefaultLimit), spec.Limit)
	assert.Empty(t, spec.Filters)
	assert.Empty(t, spec.Sort)
	assert.Empty(t, spec.Fields)
	assert.Empty(t, spec.Keyword)
}

func TestParseQuerySpec_ReservedKeysAreNotFilters(t *testing.T) {
	values, err := url.ParseQuery("page=2&limit=5&sort=title&fields=id,title&keyword=sunset&status=approved")
	require.NoError(t, err)

	spec, err := ParseQuerySpec(values, 0)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), spec.Page)
	assert.Equal(t, uint64(5), spec.Limit)
	assert.Equal(t, "sunset", spec.Keyword)
	assert.Equal(t, []string{"id", "title"}, spec.Fields)

	require.Len(t, spec.Filters, 1)
	require.Len(t, spec.Filters["status"], 1)
	assert.Equal(t, types.FilterOpEq, spec.Filters["status"][0].Op)
	assert.Equal(t, "approved", spec.Filters["status"][0].Value)
}

func TestParseQuerySpec_SortDirections(t *testing.T) {
	values, err := url.ParseQuery("sort=-created_at,title")
	require.NoError(t, err)

	spec, err := ParseQuerySpec(values, 0)
	require.NoError(t, err)

	require.Len(t, spec.Sort, 2)
	assert.Equal(t, types.SortKey{Field: "created_at", Desc: true}, spec.Sort[0])
	assert.Equal(t, types.SortKey{Field: "title", Desc: false}, spec.Sort[1])
}

func TestParseQuerySpec_RangeOnOneField(t *testing.T) {
	values, err := url.ParseQuery("price[gte]=10&price[lte]=50")
	require.NoError(t, err)

	spec, err := ParseQuerySpec(values, 0)
	require.NoError(t, err)

	conditions := spec.Filters["price"]
	require.Len(t, conditions, 2)

	ops := map[types.FilterOp]string{}
	for _, c := range conditions {
		ops[c.Op] = c.Value
	}
	assert.Equal(t, "10", ops[types.FilterOpGte])
	assert.Equal(t, "50", ops[types.FilterOpLte])
}

func TestParseQuerySpec_InOperatorSplitsValues(t *testing.T) {
	values, err := url.ParseQuery("status[in]=approved,pending")
	require.NoError(t, err)

	spec, err := ParseQuerySpec(values, 0)
	require.NoError(t, err)

	conditions := spec.Filters["status"]
	require.Len(t, conditions, 1)
	assert.Equal(t, types.FilterOpIn, conditions[0].Op)
	assert.Equal(t, []string{"approved", "pending"}, conditions[0].Values)
}

func TestParseQuerySpec_UnknownOperatorFailsClosed(t *testing.T) {
	values, err := url.ParseQuery("price[between]=10")
	require.NoError(t, err)

	_, err = ParseQuerySpec(values, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "between")
}

func TestParseQuerySpec_LimitIsCapped(t *testing.T) {
	values, err := url.ParseQuery("limit=5000")
	require.NoError(t, err)

	spec, err := ParseQuerySpec(values, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxLimit), spec.Limit)
}

func TestParseQuerySpec_GarbagePageAndLimitKeepDefaults(t *testing.T) {
	values, err := url.ParseQuery("page=abc&limit=-3")
	require.NoError(t, err)

	spec, err := ParseQuerySpec(values, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), spec.Page)
	assert.Equal(t, uint64(DefaultLimit), spec.Limit)
}

func TestQuerySpec_Offset(t *testing.T) {
	spec := types.QuerySpec{Page: 3, Limit: 20}
	assert.Equal(t, uint64(40), spec.Offset())

	spec = types.QuerySpec{Page: 1, Limit: 20}
	assert.Equal(t, uint64(0), spec.Offset())
}
