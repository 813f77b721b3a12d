package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Setting value types.
const (
	SettingString  = "string"
	SettingInteger = "integer"
	SettingBoolean = "boolean"
	SettingJSON    = "json"
)

// Well-known setting keys read by the order layer.
const (
	KeyOrderNumberPrefix = "order_number_prefix"
	KeyNextOrderNumber   = "next_order_number"
)

// Setting is a key/value row. Value is always text; the typed accessors parse
// it on read.
type Setting struct {
	ID          int64  `gorm:"primaryKey"`
	Key         string `gorm:"uniqueIndex;not null"`
	Value       string `gorm:"not null"`
	ValueType   string `gorm:"not null;default:'string'"`
	GroupName   string `gorm:"not null;default:'general'"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Int reads the leading integer of Value, so "12abc" is 12. Text that does
// not start with digits is 0.
func (s Setting) Int() int {
	v := strings.TrimLeft(s.Value, " \t\r\n")
	end := 0
	if end < len(v) && (v[0] == '-' || v[0] == '+') {
		end++
	}
	start := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return 0
	}
	return n
}

// Bool is true only for the exact text "true".
func (s Setting) Bool() bool {
	return s.Value == "true"
}

// JSON decodes Value. Empty or malformed text yields nil rather than an error.
func (s Setting) JSON() any {
	if s.Value == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s.Value), &v); err != nil {
		return nil
	}
	return v
}
