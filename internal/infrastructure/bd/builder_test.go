package bd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-system/pkg/types"
)

var testResource = ResourceConfig{
	Table:   "uploads",
	Columns: []string{"id", "title", "price", "status", "created_at"},
	ColumnMap: map[string]string{
		"id":         "id",
		"title":      "title",
		"price":      "price",
		"status":     "status",
		"created_at": "created_at",
	},
	TextColumns:   map[string]bool{"title": true},
	SearchColumns: []string{"title", "tags"},
}

func eqFilter(value string) []types.FilterValue {
	return []types.FilterValue{{Op: types.FilterOpEq, Value: value}}
}

func TestBuildListQuery_EqualityFilter(t *testing.T) {
	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{"status": eqFilter("approved")},
		Page:    1,
		Limit:   20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "FROM uploads")
	assert.Contains(t, sqlStr, "status = $1")
	assert.Equal(t, []interface{}{"approved"}, args)
}

func TestBuildListQuery_RangeFilter(t *testing.T) {
	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{
			"price": {
				{Op: types.FilterOpGte, Value: "10"},
				{Op: types.FilterOpLte, Value: "50"},
			},
		},
		Page:  1,
		Limit: 20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "price >= $1")
	assert.Contains(t, sqlStr, "price <= $2")
	assert.Equal(t, []interface{}{"10", "50"}, args)
}

func TestBuildListQuery_InFilter(t *testing.T) {
	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{
			"status": {{Op: types.FilterOpIn, Values: []string{"approved", "pending"}}},
		},
		Page:  1,
		Limit: 20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "status IN ($1,$2)")
	assert.Equal(t, []interface{}{"approved", "pending"}, args)
}

func TestBuildListQuery_KeywordSearch(t *testing.T) {
	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{},
		Keyword: "sunset",
		Page:    1,
		Limit:   20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "title ILIKE $1 OR tags ILIKE $2")
	assert.Equal(t, []interface{}{"%sunset%", "%sunset%"}, args)
}

func TestBuildListQuery_DefaultSort(t *testing.T) {
	spec := types.QuerySpec{Page: 1, Limit: 20}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, _, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "ORDER BY created_at DESC")
}

func TestBuildListQuery_TextSortIsCaseInsensitive(t *testing.T) {
	spec := types.QuerySpec{
		Sort:  []types.SortKey{{Field: "title"}, {Field: "price", Desc: true}},
		Page:  1,
		Limit: 20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, _, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "ORDER BY LOWER(title) ASC, price DESC")
}

func TestBuildListQuery_PaginationMath(t *testing.T) {
	spec := types.QuerySpec{Page: 3, Limit: 20}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, _, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "LIMIT 20")
	assert.Contains(t, sqlStr, "OFFSET 40")
}

func TestBuildListQuery_ProjectionKeepsID(t *testing.T) {
	spec := types.QuerySpec{
		Fields: []string{"title", "price"},
		Page:   1,
		Limit:  20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, _, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "SELECT id, title, price FROM uploads")
}

func TestBuildListQuery_UnknownProjectionFieldsIgnored(t *testing.T) {
	spec := types.QuerySpec{
		Fields: []string{"password_hash"},
		Page:   1,
		Limit:  20,
	}

	builder, err := BuildListQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, _, err := builder.ToSql()
	require.NoError(t, err)
	// nothing valid requested: fall back to the full column list
	assert.Contains(t, sqlStr, "SELECT id, title, price, status, created_at FROM uploads")
}

func TestBuildListQuery_UnknownFilterField(t *testing.T) {
	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{"password_hash": eqFilter("x")},
		Page:    1,
		Limit:   20,
	}

	_, err := BuildListQuery(testResource, spec)
	require.Error(t, err)
	assert.ErrorContains(t, err, "password_hash")
}

func TestBuildListQuery_UnknownSortField(t *testing.T) {
	spec := types.QuerySpec{
		Sort:  []types.SortKey{{Field: "password_hash"}},
		Page:  1,
		Limit: 20,
	}

	_, err := BuildListQuery(testResource, spec)
	require.Error(t, err)
}

func TestBuildCountQuery_SharesConditionsSkipsPagination(t *testing.T) {
	spec := types.QuerySpec{
		Filters: map[string][]types.FilterValue{"status": eqFilter("approved")},
		Keyword: "sunset",
		Page:    3,
		Limit:   20,
	}

	builder, err := BuildCountQuery(testResource, spec)
	require.NoError(t, err)

	sqlStr, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "SELECT COUNT(*) FROM uploads")
	assert.Contains(t, sqlStr, "status = $1")
	assert.Contains(t, sqlStr, "ILIKE")
	assert.NotContains(t, sqlStr, "LIMIT")
	assert.NotContains(t, sqlStr, "OFFSET")
	assert.Len(t, args, 3)
}
