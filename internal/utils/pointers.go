package utils

import "time"

func StringPtr(s string) *string {
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullableString maps empty form values to nil so optional columns
// stay NULL instead of storing empty strings.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
