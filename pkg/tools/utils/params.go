package utils

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// Args is the argument map of a single tool call.
type Args map[string]any

// ArgsFrom extracts the arguments of a tool request.
func ArgsFrom(req mcp.CallToolRequest) Args {
	if req.Params.Arguments == nil {
		return Args{}
	}

	return Args(req.Params.Arguments)
}

// Has reports whether key was supplied with a non-null value.
func (args Args) Has(key string) bool {
	val, exists := args[key]
	return exists && val != nil
}

func (args Args) missing(key string, required bool) error {
	if required {
		return fmt.Errorf("missing required parameter: '%s'", key)
	}

	return nil
}

// String safely extracts a string parameter
func (args Args) String(key string, required bool) (string, error) {
	if !args.Has(key) {
		return "", args.missing(key, required)
	}

	str, ok := args[key].(string)
	if !ok {
		return "", fmt.Errorf("parameter '%s' must be a string", key)
	}

	if required && str == "" {
		return "", fmt.Errorf("parameter '%s' must not be empty", key)
	}

	return str, nil
}

// Float64 safely extracts a numeric parameter
func (args Args) Float64(key string, required bool) (float64, error) {
	if !args.Has(key) {
		return 0, args.missing(key, required)
	}

	switch f := args[key].(type) {
	case float64:
		return f, nil
	case int:
		return float64(f), nil
	case int64:
		return float64(f), nil
	}

	return 0, fmt.Errorf("parameter '%s' must be a number", key)
}

// Int extracts an integer parameter, rejecting fractional values.
func (args Args) Int(key string, required bool) (int, error) {
	f, err := args.Float64(key, required)
	if err != nil {
		return 0, err
	}

	if f != math.Trunc(f) {
		return 0, fmt.Errorf("parameter '%s' must be an integer", key)
	}

	return int(f), nil
}

// Bool safely extracts a boolean parameter
func (args Args) Bool(key string, required bool) (bool, error) {
	if !args.Has(key) {
		return false, args.missing(key, required)
	}

	b, ok := args[key].(bool)
	if !ok {
		return false, fmt.Errorf("parameter '%s' must be a boolean", key)
	}

	return b, nil
}

// Map safely extracts an object parameter
func (args Args) Map(key string, required bool) (map[string]any, error) {
	if !args.Has(key) {
		return nil, args.missing(key, required)
	}

	m, ok := args[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parameter '%s' must be an object", key)
	}

	return m, nil
}

// Array safely extracts an array parameter
func (args Args) Array(key string, required bool) ([]any, error) {
	if !args.Has(key) {
		return nil, args.missing(key, required)
	}

	switch arr := args[key].(type) {
	case []any:
		return args.withArray(key, arr, required)
	case []string:
		out := make([]any, len(arr))
		for i, s := range arr {
			out[i] = s
		}
		return args.withArray(key, out, required)
	}

	return nil, fmt.Errorf("parameter '%s' must be an array", key)
}

func (args Args) withArray(key string, arr []any, required bool) ([]any, error) {
	if required && len(arr) == 0 {
		return nil, fmt.Errorf("parameter '%s' must not be empty", key)
	}

	return arr, nil
}

// Strings extracts an array parameter whose items are all strings.
func (args Args) Strings(key string, required bool) ([]string, error) {
	arr, err := args.Array(key, required)
	if err != nil || arr == nil {
		return nil, err
	}

	out := make([]string, 0, len(arr))
	for i, item := range arr {
		str, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parameter '%s' item %d must be a string", key, i)
		}
		out = append(out, str)
	}

	return out, nil
}

// Ints extracts an array parameter whose items are all whole numbers.
func (args Args) Ints(key string, required bool) ([]int, error) {
	arr, err := args.Array(key, required)
	if err != nil || arr == nil {
		return nil, err
	}

	out := make([]int, 0, len(arr))
	for i, item := range arr {
		switch n := item.(type) {
		case int:
			out = append(out, n)
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("parameter '%s' item %d must be an integer", key, i)
			}
			out = append(out, int(n))
		default:
			return nil, fmt.Errorf("parameter '%s' item %d must be an integer", key, i)
		}
	}

	return out, nil
}

// Objects extracts an array parameter whose items are all objects.
func (args Args) Objects(key string, required bool) ([]map[string]any, error) {
	arr, err := args.Array(key, required)
	if err != nil || arr == nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(arr))
	for i, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parameter '%s' item %d must be an object", key, i)
		}
		out = append(out, m)
	}

	return out, nil
}
