// Package registry defines the known voicenav settings.
//
// The registry maintains definitions of all settings with their types,
// defaults and validation rules, and converts raw values read from files
// or the environment into the setting's Go type.
package registry

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Setting defines a configuration setting with its metadata.
type Setting struct {
	// Path is the dot-separated path (e.g., "text_navigation.max_line_search").
	Path string

	// Type is the setting's data type.
	Type SettingType

	// Default is the default value, already in the setting's Go type.
	Default any

	// Description is human-readable documentation.
	Description string

	// Enum lists allowed values for enum types.
	Enum []string

	// Minimum for numeric types (nil means no minimum).
	Minimum *float64

	// Maximum for numeric types (nil means no maximum).
	Maximum *float64

	// Env is the environment variable that overrides the setting.
	Env string
}

// Coerce converts value to the setting's Go type and validates it.
//
// Integers arrive as int64 from TOML and int from YAML; durations may be
// strings ("200ms") or integer milliseconds. Strings are accepted for every
// type so environment values can be used directly.
func (s *Setting) Coerce(value any) (any, error) {
	switch s.Type {
	case TypeString:
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return str, nil

	case TypeInt:
		n, err := toInt(value)
		if err != nil {
			return nil, err
		}
		if err := s.validateRange(float64(n)); err != nil {
			return nil, err
		}
		return n, nil

	case TypeBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("expected boolean, got %q", v)
			}
			return b, nil
		default:
			return nil, fmt.Errorf("expected boolean, got %T", value)
		}

	case TypeDuration:
		d, err := toDuration(value)
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, fmt.Errorf("duration %v is negative", d)
		}
		if err := s.validateRange(float64(d.Milliseconds())); err != nil {
			return nil, err
		}
		return d, nil

	case TypeEnum:
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		str = strings.ToLower(str)
		if !slices.Contains(s.Enum, str) {
			return nil, fmt.Errorf("value must be one of: %v", s.Enum)
		}
		return str, nil

	case TypeStringList:
		return toStrings(value)

	default:
		return nil, fmt.Errorf("unsupported setting type %s", s.Type)
	}
}

// Validate checks if a value is valid for this setting.
func (s *Setting) Validate(value any) error {
	_, err := s.Coerce(value)
	return err
}

// validateRange checks a numeric value against Minimum and Maximum.
// Durations are compared in milliseconds.
func (s *Setting) validateRange(f float64) error {
	if s.Minimum != nil && f < *s.Minimum {
		return fmt.Errorf("value %v is less than minimum %v", f, *s.Minimum)
	}
	if s.Maximum != nil && f > *s.Maximum {
		return fmt.Errorf("value %v is greater than maximum %v", f, *s.Maximum)
	}
	return nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", value)
	}
}

func toDuration(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			if n, nerr := strconv.Atoi(strings.TrimSpace(v)); nerr == nil {
				return time.Duration(n) * time.Millisecond, nil
			}
			return 0, fmt.Errorf("expected duration, got %q", v)
		}
		return d, nil
	default:
		n, err := toInt(value)
		if err != nil {
			return 0, fmt.Errorf("expected duration, got %T", value)
		}
		return time.Duration(n) * time.Millisecond, nil
	}
}

func toStrings(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected list of strings, item %d is %T", i, item)
			}
			out[i] = s
		}
		return out, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}, nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", value)
	}
}

// SettingType represents the data type of a setting.
type SettingType uint8

const (
	// TypeString represents a string value.
	TypeString SettingType = iota
	// TypeInt represents an integer value.
	TypeInt
	// TypeBool represents a boolean value.
	TypeBool
	// TypeDuration represents a time duration.
	TypeDuration
	// TypeEnum represents a value from a fixed set.
	TypeEnum
	// TypeStringList represents a list of strings.
	TypeStringList
)

// String returns the string representation of the type.
func (t SettingType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	case TypeDuration:
		return "duration"
	case TypeEnum:
		return "enum"
	case TypeStringList:
		return "list"
	default:
		return "unknown"
	}
}

// MinValue creates a pointer to a float64 for use as Minimum.
func MinValue(v float64) *float64 {
	return &v
}

// MaxValue creates a pointer to a float64 for use as Maximum.
func MaxValue(v float64) *float64 {
	return &v
}
