package domain

import (
	"cmp"
	"sort"
)

// Count is one entry of a value-count table.
type Count[T comparable] struct {
	Value T
	N     int
}

// ValueCounts tallies values, most frequent first. Equal counts keep the
// order in which the values first appeared.
func ValueCounts[T comparable](values []T) []Count[T] {
	pos := make(map[T]int, len(values))
	counts := make([]Count[T], 0)
	for _, v := range values {
		if i, ok := pos[v]; ok {
			counts[i].N++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, N: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].N > counts[j].N })
	return counts
}

// Mode returns the most frequent value; ties resolve to the smallest one.
// ok is false when values is empty.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return mode, false
	}
	mode = counts[0].Value
	for _, c := range counts[1:] {
		if c.N != counts[0].N {
			break
		}
		mode = min(mode, c.Value)
	}
	return mode, true
}

// MinMax returns the smallest and largest of values.
func MinMax(values []int) (lo, hi int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}
