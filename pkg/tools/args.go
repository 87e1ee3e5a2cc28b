package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// requireString returns the named argument as a non-empty string.
func requireString(args map[string]interface{}, field string) (string, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return "", NewInvalidArgument("missing required argument: %s", field)
	}
	s, ok := value.(string)
	if !ok {
		return "", NewInvalidArgument("argument %s must be a string", field)
	}
	if strings.TrimSpace(s) == "" {
		return "", NewInvalidArgument("argument %s must not be empty", field)
	}
	return s, nil
}

// optionalString returns the named argument as a string when present.
func optionalString(args map[string]interface{}, field string) (string, bool, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return "", false, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", false, NewInvalidArgument("argument %s must be a string", field)
	}
	return s, true, nil
}

// requireInt returns the named argument as an integer.
func requireInt(args map[string]interface{}, field string) (int, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return 0, NewInvalidArgument("missing required argument: %s", field)
	}
	n, ok := intValue(value)
	if !ok {
		return 0, NewInvalidArgument("argument %s must be an integer", field)
	}
	return n, nil
}

// optionalInt returns the named argument as an integer when present.
func optionalInt(args map[string]interface{}, field string) (int, bool, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return 0, false, nil
	}
	n, ok := intValue(value)
	if !ok {
		return 0, false, NewInvalidArgument("argument %s must be an integer", field)
	}
	return n, true, nil
}

// optionalNumber returns the named argument as a float when present.
func optionalNumber(args map[string]interface{}, field string) (float64, bool, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return 0, false, nil
	}
	f, ok := floatValue(value)
	if !ok {
		return 0, false, NewInvalidArgument("argument %s must be a number", field)
	}
	return f, true, nil
}

// optionalBool returns the named argument as a boolean when present.
func optionalBool(args map[string]interface{}, field string) (bool, bool, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return false, false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, false, NewInvalidArgument("argument %s must be a boolean", field)
	}
	return b, true, nil
}

// requireList returns the named argument as a non-empty array.
func requireList(args map[string]interface{}, field string) ([]interface{}, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return nil, NewInvalidArgument("missing required argument: %s", field)
	}
	list, ok := value.([]interface{})
	if !ok {
		return nil, NewInvalidArgument("argument %s must be an array", field)
	}
	if len(list) == 0 {
		return nil, NewInvalidArgument("argument %s must not be empty", field)
	}
	return list, nil
}

// optionalList returns the named argument as an array when present.
func optionalList(args map[string]interface{}, field string) ([]interface{}, error) {
	value, ok := args[field]
	if !ok || value == nil {
		return nil, nil
	}
	arr, ok := value.([]interface{})
	if !ok {
		return nil, NewInvalidArgument("argument %s must be an array", field)
	}
	return arr, nil
}

// intValue extracts an integer from the forms JSON decoding can produce.
// Floats with a fractional part are rejected.
func intValue(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// floatValue extracts a float from the forms JSON decoding can produce.
func floatValue(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// formatAmount renders a numeric amount as the decimal-as-text form the API
// expects.
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// stringifyElement renders an array element (string or number) as a query
// parameter value.
func stringifyElement(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return strconv.Itoa(int(v)), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}
