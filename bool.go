package netplan

import (
	"fmt"
	"strings"
)

// YAML allows more boolean literals than just true and false: netplan
// documents in the wild use yes/no, on/off and y/n, in any case. Bool and
// ParseBool accept all of them. The accepted set, in canonical case:
var acceptedBoolValues = []string{"true", "false", "yes", "no", "on", "off", "y", "n"}

// UnrecognizedValueError is returned when a string scalar is not one of the
// accepted boolean literals.
type UnrecognizedValueError struct {
	// Value is the offending literal, exactly as it appeared in the document.
	Value string
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("unknown boolean value %q, expected one of: %s",
		e.Value, strings.Join(acceptedBoolValues, ", "))
}

// TypeMismatchError is returned when the scalar is structurally not a
// boolean: a number, a mapping, a sequence.
type TypeMismatchError struct {
	// Kind describes what was found instead of a boolean.
	Kind string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected a YAML boolean, got %s", e.Kind)
}

// ParseBool converts a decoded YAML scalar into a strict boolean. Native
// booleans pass through unchanged. Strings are matched case-insensitively
// against the accepted literal set; anything else is an
// UnrecognizedValueError. Values of any other type are a TypeMismatchError.
func ParseBool(v interface{}) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(t) {
		case "true", "yes", "on", "y":
			return true, nil
		case "false", "no", "off", "n":
			return false, nil
		default:
			return false, &UnrecognizedValueError{Value: t}
		}
	default:
		return false, &TypeMismatchError{Kind: yamlKind(v)}
	}
}

// yamlKind names the YAML kind of a value decoded into an interface, for
// error messages.
func yamlKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case int, int64, uint64, float64:
		return "a number"
	case map[interface{}]interface{}, map[string]interface{}:
		return "a mapping"
	case []interface{}:
		return "a sequence"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Bool is a boolean that decodes from any of the YAML boolean literals
// (true/false, yes/no, on/off, y/n, case-insensitive) and encodes back to a
// native true or false.
//
// Use a plain Bool field for required values. Use *Bool for optional values:
// the pointer stays nil both when the key is absent and when it is an
// explicit null, and is only set when a concrete value is present.
type Bool bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bool) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v, err := ParseBool(raw)
	if err != nil {
		return err
	}
	*b = Bool(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler. Lenient input always serializes
// back as a native boolean.
func (b Bool) MarshalYAML() (interface{}, error) {
	return bool(b), nil
}
