// Package parse provides utilities for extracting typed values from raw chat
// model output. Models frequently wrap JSON in markdown code fences or emit
// slightly invalid JSON (single quotes, trailing commas, unquoted keys), so
// complex types go through automatic JSON repair before failing with a clear
// error.
//
// The main entry point is the generic [StringAs] function, which handles both
// primitive types (string, bool, int, uint, float) and complex types
// (structs, maps, slices) in a single API.
package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// StringAs parses content into the type T. Primitive targets use direct
// string conversion; struct, map, and slice targets use JSON unmarshaling,
// retried on repaired JSON when the first attempt fails.
func StringAs[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		candidate := stripCodeFence(content)
		if err := json.Unmarshal([]byte(candidate), &result); err == nil {
			return result, nil
		}

		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return result, fmt.Errorf("content is not valid JSON for %T and repair failed: %v", result, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
		}
		return result, nil
	}
}

// stripCodeFence removes a surrounding markdown code fence (``` or ```json)
// when present, returning the inner content unchanged otherwise.
func stripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	rest := strings.TrimPrefix(content, "```")
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[idx+1:]
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "```")
	return strings.TrimSpace(rest)
}
