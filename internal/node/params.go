package node

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"sendseven/internal/types"
)

var exprRegex = regexp.MustCompile(`\$\{\{\s*(.+?)\s*\}\}`)

// ValidateParams rejects a call whose required parameters are missing or
// empty. This runs before any network call is made.
func ValidateParams(def *types.OperationDef, params map[string]any) error {
	for name, field := range def.Params {
		if !field.Required {
			continue
		}
		val, ok := params[name]
		if !ok || val == nil {
			return fmt.Errorf("missing required parameter %q", name)
		}
		if s, isString := val.(string); isString && strings.TrimSpace(s) == "" {
			return fmt.Errorf("missing required parameter %q", name)
		}
	}
	return nil
}

// ResolveParams resolves ${{ item.x }} and ${{ env.X }} expressions in the
// parameter map against the current input item. Non-string values pass
// through untouched.
func ResolveParams(params map[string]any, item types.Item) (map[string]any, error) {
	resolved := make(map[string]any, len(params))
	for k, v := range params {
		r, err := resolveValue(v, item)
		if err != nil {
			return nil, fmt.Errorf("resolving parameter %q: %w", k, err)
		}
		resolved[k] = r
	}
	return resolved, nil
}

func resolveValue(v any, item types.Item) (any, error) {
	switch val := v.(type) {
	case string:
		return resolveString(val, item)
	case map[string]any:
		return ResolveParams(val, item)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			r, err := resolveValue(elem, item)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

func resolveString(s string, item types.Item) (any, error) {
	// A string that is a single expression keeps the referenced value's type.
	if match := exprRegex.FindStringSubmatch(s); match != nil && match[0] == s {
		return evaluate(match[1], item)
	}

	var evalErr error
	result := exprRegex.ReplaceAllStringFunc(s, func(match string) string {
		sub := exprRegex.FindStringSubmatch(match)
		val, err := evaluate(sub[1], item)
		if err != nil {
			evalErr = err
			return match
		}
		return fmt.Sprintf("%v", val)
	})
	return result, evalErr
}

func evaluate(expr string, item types.Item) (any, error) {
	root, rest, _ := strings.Cut(expr, ".")

	switch root {
	case "item":
		if rest == "" {
			return map[string]any(item), nil
		}
		val, err := lookupNested(item, rest)
		if err != nil {
			// Missing item fields resolve to empty string (optional fields).
			return "", nil
		}
		return val, nil
	case "env":
		if rest == "" {
			return nil, fmt.Errorf("incomplete env reference %q", expr)
		}
		return os.Getenv(rest), nil
	default:
		return nil, fmt.Errorf("unknown variable root %q in %q", root, expr)
	}
}

func lookupNested(m map[string]any, path string) (any, error) {
	segments := strings.Split(path, ".")
	var current any = m
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot descend into %q", seg)
		}
		current, ok = obj[seg]
		if !ok {
			return nil, fmt.Errorf("field %q not found", seg)
		}
	}
	return current, nil
}

// StringParam reads an optional string parameter.
func StringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// StringSliceParam reads a parameter that may be a []string, []any of
// strings, or a comma-separated string.
func StringSliceParam(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			out = append(out, fmt.Sprintf("%v", elem))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}

// ObjectParam reads a parameter that is either a JSON object already or a
// string containing JSON to be parsed.
func ObjectParam(params map[string]any, key string) (map[string]any, error) {
	switch v := params[key].(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var parsed map[string]any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, fmt.Errorf("parameter %q is not valid JSON: %w", key, err)
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("parameter %q must be an object or a JSON string", key)
	}
}
