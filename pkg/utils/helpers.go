package utils

import (
	"database/sql"
	"strconv"
	"time"
)

func StringPtr(s string) *string { return &s }

func FormatUint(n uint64) string { return strconv.FormatUint(n, 10) }

func Uint64Ptr(n uint64) *uint64 { return &n }

func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func NullTimeToEmptyString(nt sql.NullTime) string {
	if !nt.Valid {
		return ""
	}
	return nt.Time.Local().Format("2006-01-02 15:04:05")
}

func TimePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
