package builder

import (
	"fmt"
	"slices"
	"strconv"
)

// IDFn generates a vertex key from its zero-based index.
// It must be pure: the same idx always yields the same key.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0,25]: 0→"A".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var name []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		name = append(name, rune('A'+i%26))
	}
	slices.Reverse(name)

	return string(name)
}

// PrefixIDFn returns prefix followed by the decimal index: "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
