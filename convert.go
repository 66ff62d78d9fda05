package netplan

import "fmt"

// NewBool returns a pointer to the given value as a Bool.
func NewBool(b bool) *Bool {
	v := Bool(b)
	return &v
}

// BoolVal returns the value of the Bool at the pointer, or false if the
// pointer is nil.
func BoolVal(b *Bool) bool {
	if b == nil {
		return false
	}
	return bool(*b)
}

// BoolGoString returns the value of the Bool for printing in a string.
func BoolGoString(b *Bool) string {
	if b == nil {
		return "(*netplan.Bool)(nil)"
	}
	return fmt.Sprintf("%t", bool(*b))
}

// String returns a pointer to the given string.
func String(s string) *string {
	return &s
}

// StringVal returns the value of the string at the pointer, or "" if the
// pointer is nil.
func StringVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Int returns a pointer to the given int.
func Int(i int) *int {
	return &i
}

// IntVal returns the value of the int at the pointer, or 0 if the pointer is
// nil.
func IntVal(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
