package entities

import (
	"strconv"
	"time"
)

const (
	SettingTypeString = "string"
	SettingTypeInt    = "int"
	SettingTypeBool   = "bool"
)

type Setting struct {
	ID        uint64
	Key       string
	Value     string
	ValueType string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ValidateSettingValue checks that value parses as the declared type.
func ValidateSettingValue(valueType, value string) bool {
	switch valueType {
	case SettingTypeString:
		return true
	case SettingTypeInt:
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	case SettingTypeBool:
		_, err := strconv.ParseBool(value)
		return err == nil
	}
	return false
}
