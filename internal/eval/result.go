package eval

import (
	"fmt"
	"sort"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/oakwood-commons/tabx/pkg/frame"
)

// toGo converts CEL types to Go native types recursively, handling both
// primitives and collections.
func toGo(val ref.Val) any {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	}

	if valuer, ok := val.(interface{ Value() any }); ok {
		inner := valuer.Value()

		if refSlice, ok := inner.([]ref.Val); ok {
			out := make([]any, len(refSlice))
			for i, elem := range refSlice {
				out[i] = toGo(elem)
			}
			return out
		}
		if slice, ok := inner.([]any); ok {
			out := make([]any, len(slice))
			for i, elem := range slice {
				if rv, ok := elem.(ref.Val); ok {
					out[i] = toGo(rv)
				} else {
					out[i] = elem
				}
			}
			return out
		}
		if m, ok := inner.(map[string]any); ok {
			out := make(map[string]any, len(m))
			for k, v := range m {
				if rv, ok := v.(ref.Val); ok {
					out[k] = toGo(rv)
				} else {
					out[k] = v
				}
			}
			return out
		}
		if m, ok := inner.(map[ref.Val]ref.Val); ok {
			out := make(map[string]any, len(m))
			for k, v := range m {
				out[fmt.Sprintf("%v", toGo(k))] = toGo(v)
			}
			return out
		}
		return inner
	}

	return val
}

// shapeResult turns an evaluation result into a presentable frame.
// selectionOrder is the selection's column order; result columns that match
// it keep that order, new columns follow in first-appearance order.
func shapeResult(result any, selectionOrder []string) frame.Frame {
	switch v := result.(type) {
	case []any:
		if rows, ok := asRowMaps(v); ok {
			return framify(rows, selectionOrder)
		}
		// List of scalars: one column of values.
		vals := make([][]any, len(v))
		for i, elem := range v {
			vals[i] = []any{normalizeScalar(elem)}
		}
		return frame.New([]string{"value"}, vals)
	case map[string]any:
		return framify([]map[string]any{v}, selectionOrder)
	default:
		return frame.Scalar(normalizeScalar(v))
	}
}

// asRowMaps reports whether every element of the list is a row map. An empty
// list counts, so filters that match nothing produce an empty table.
func asRowMaps(list []any) ([]map[string]any, bool) {
	rows := make([]map[string]any, len(list))
	for i, elem := range list {
		m, ok := elem.(map[string]any)
		if !ok {
			return nil, false
		}
		rows[i] = m
	}
	return rows, true
}

// framify builds a table from row maps with a deterministic column order:
// selection columns that still appear come first, anything new follows in
// first-appearance order across rows.
func framify(rows []map[string]any, selectionOrder []string) frame.Frame {
	present := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			present[k] = true
		}
	}

	var columns []string
	seen := make(map[string]bool)
	for _, label := range selectionOrder {
		if present[label] && !seen[label] {
			columns = append(columns, label)
			seen[label] = true
		}
	}
	for _, row := range rows {
		for _, k := range sortedKeys(row) {
			if present[k] && !seen[k] {
				columns = append(columns, k)
				seen[k] = true
			}
		}
	}

	vals := make([][]any, len(rows))
	for i, row := range rows {
		line := make([]any, len(columns))
		for j, col := range columns {
			if v, ok := row[col]; ok {
				line[j] = normalizeScalar(v)
			} else {
				line[j] = ""
			}
		}
		vals[i] = line
	}
	return frame.New(columns, vals)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeScalar flattens non-scalar leaves (nested lists/maps from exotic
// expressions) into display strings so every cell stays one line.
func normalizeScalar(v any) any {
	switch v.(type) {
	case nil:
		return ""
	case bool, int64, uint64, float64, string:
		return v
	case []byte:
		return string(v.([]byte))
	default:
		return fmt.Sprintf("%v", v)
	}
}
