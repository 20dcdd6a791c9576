// Package domain contains the core types shared by the shader registry and its adapters.
package domain

import (
	"maps"
	"slices"
)

// VariableMapping maps a logical shader variable name to its minified name.
// A single mapping is shared by every shader known to a registry.
type VariableMapping map[string]string

// Clone returns an independent copy of the mapping. A nil mapping clones to an empty one.
func (m VariableMapping) Clone() VariableMapping {
	out := make(VariableMapping, len(m))
	maps.Copy(out, m)
	return out
}

// Names returns the logical names in sorted order.
func (m VariableMapping) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Equal reports whether both mappings hold the same names with the same values.
func (m VariableMapping) Equal(other VariableMapping) bool {
	return DiffMappings(m, other).Empty()
}

// MappingDiff describes how a shared variable mapping changed between two analyses.
type MappingDiff struct {
	// Added lists names present only in the newer mapping.
	Added []string
	// Removed lists names present only in the older mapping.
	Removed []string
	// Changed lists names present in both whose minified name differs.
	Changed []string
}

// Empty reports whether the two compared mappings were structurally equal.
func (d MappingDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffMappings compares two mappings by value. Both directions are checked, so a
// renamed key with an equal count still shows up as one removal and one addition.
func DiffMappings(prev, next VariableMapping) MappingDiff {
	var diff MappingDiff

	for _, name := range prev.Names() {
		value, ok := next[name]
		switch {
		case !ok:
			diff.Removed = append(diff.Removed, name)
		case value != prev[name]:
			diff.Changed = append(diff.Changed, name)
		}
	}

	for _, name := range next.Names() {
		if _, ok := prev[name]; !ok {
			diff.Added = append(diff.Added, name)
		}
	}

	return diff
}
