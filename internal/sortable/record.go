package sortable

import "fmt"

// Record is an untyped row for callers without a Go type for their items.
type Record map[string]any

// FieldLabel builds a Label func reading one field of a Record.
// A missing or nil field renders as an empty label.
func FieldLabel(name string) func(Record) string {
	return func(r Record) string {
		v, ok := r[name]
		if !ok || v == nil {
			return ""
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
}

// RowKey is the stable per-row key derived from the list name and position.
func RowKey(listName string, index int) string {
	return fmt.Sprintf("%s-%d", listName, index)
}
