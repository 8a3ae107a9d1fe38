package submit

import (
	"fmt"
	"strconv"
)

// rectInput is a validated rectangle parsed from the loosely typed request
// payload. Raw field types are never trusted past this point.
type rectInput struct {
	X, Y, Width, Height float64
	CategoryID          *int
	Hierarchy           string
	Source              string
}

func parseRectangle(raw map[string]interface{}) (rectInput, error) {
	in := rectInput{Source: "manual"}

	var err error
	if in.X, err = numField(raw, "x"); err != nil {
		return rectInput{}, err
	}
	if in.Y, err = numField(raw, "y"); err != nil {
		return rectInput{}, err
	}
	if in.Width, err = numField(raw, "width"); err != nil {
		return rectInput{}, err
	}
	if in.Height, err = numField(raw, "height"); err != nil {
		return rectInput{}, err
	}

	if v, ok := raw["categoryId"]; ok && v != nil {
		if id, ok := toInt(v); ok {
			in.CategoryID = &id
		}
	}
	if v, ok := raw["hierarchy"].(string); ok {
		in.Hierarchy = v
	}
	if v, ok := raw["source"].(string); ok && v != "" {
		in.Source = v
	}
	return in, nil
}

func numField(raw map[string]interface{}, key string) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing field %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric field %q: %q", key, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("non-numeric field %q: %T", key, v)
	}
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		id, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
