package utils

import "github.com/aarondl/null/v8"

// Patch helpers apply a nullable DTO field onto an entity field only when the
// client actually sent it.

func PatchString(dst *string, v null.String) bool {
	if !v.Valid {
		return false
	}
	*dst = v.String
	return true
}

func PatchFloat64(dst *float64, v null.Float64) bool {
	if !v.Valid {
		return false
	}
	*dst = v.Float64
	return true
}

func PatchUint64(dst *uint64, v null.Uint64) bool {
	if !v.Valid {
		return false
	}
	*dst = v.Uint64
	return true
}
