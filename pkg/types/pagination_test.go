package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePagination_FirstPage(t *testing.T) {
	p := ComputePagination(1, 20, 45)

	assert.Equal(t, uint64(45), p.TotalCount)
	assert.Equal(t, uint64(1), p.CurrentPage)
	assert.Equal(t, uint64(20), p.Limit)
	assert.Equal(t, uint64(3), p.NumberOfPages)
	require.NotNil(t, p.NextPage)
	assert.Equal(t, uint64(2), *p.NextPage)
	assert.Nil(t, p.PreviousPage)
}

func TestComputePagination_MiddlePage(t *testing.T) {
	p := ComputePagination(2, 20, 45)

	require.NotNil(t, p.NextPage)
	assert.Equal(t, uint64(3), *p.NextPage)
	require.NotNil(t, p.PreviousPage)
	assert.Equal(t, uint64(1), *p.PreviousPage)
}

func TestComputePagination_LastPage(t *testing.T) {
	p := ComputePagination(3, 20, 45)

	assert.Nil(t, p.NextPage)
	require.NotNil(t, p.PreviousPage)
	assert.Equal(t, uint64(2), *p.PreviousPage)
}

func TestComputePagination_ExactBoundary(t *testing.T) {
	// 40 records at 20 per page: exactly two pages, no next page on page 2
	p := ComputePagination(2, 20, 40)

	assert.Equal(t, uint64(2), p.NumberOfPages)
	assert.Nil(t, p.NextPage)
}

func TestComputePagination_EmptySet(t *testing.T) {
	p := ComputePagination(1, 20, 0)

	assert.Equal(t, uint64(0), p.NumberOfPages)
	assert.Nil(t, p.NextPage)
	assert.Nil(t, p.PreviousPage)
}

func TestComputePagination_SingleShortPage(t *testing.T) {
	p := ComputePagination(1, 20, 7)

	assert.Equal(t, uint64(1), p.NumberOfPages)
	assert.Nil(t, p.NextPage)
	assert.Nil(t, p.PreviousPage)
}

func TestComputePagination_PastTheEndStillReportsPrevious(t *testing.T) {
	// previousPage only checks page > 1, it is not clamped to NumberOfPages
	p := ComputePagination(9, 20, 45)

	assert.Nil(t, p.NextPage)
	require.NotNil(t, p.PreviousPage)
	assert.Equal(t, uint64(8), *p.PreviousPage)
}

func TestComputePagination_ZeroInputsFallBack(t *testing.T) {
	p := ComputePagination(0, 0, 5)

	assert.Equal(t, uint64(1), p.CurrentPage)
	assert.Equal(t, uint64(1), p.Limit)
	assert.Equal(t, uint64(5), p.NumberOfPages)
}
