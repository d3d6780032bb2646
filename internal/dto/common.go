package dto

import "marketplace-system/pkg/types"

// ListResult pairs one page of records with its pagination metadata.
type ListResult struct {
	List       []map[string]interface{}
	Pagination types.Pagination
}
