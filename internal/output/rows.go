// internal/output/rows.go
package output

import (
	"sort"
	"strconv"
)

// SortedKeys returns the histogram buckets in ascending order.
func SortedKeys(m map[int]int64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Float formats v with two decimals, the precision used by every text row.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
