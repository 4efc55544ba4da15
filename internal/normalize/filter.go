package normalize

import "github.com/ahzs645/portfolio-themes/internal/types"

// FilterActive removes nil and archived entries, preserving order. A
// positive limit truncates the result after filtering.
func FilterActive(entries []*types.RawEntry, limit int) []*types.RawEntry {
	active := make([]*types.RawEntry, 0, len(entries))
	for _, entry := range entries {
		if entry == nil || IsArchived(entry) {
			continue
		}
		active = append(active, entry)
	}
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active
}

// Visibility is the set of sections hidden from display, built from a
// configured exclusion list.
type Visibility struct {
	excluded map[types.Section]bool
	names    []string
}

// NewVisibility builds a Visibility from raw section names. Names outside the
// closed section enumeration are dropped; logf, when non-nil, receives an
// advisory line for each dropped name.
func NewVisibility(excludedNames []string, logf func(format string, args ...any)) Visibility {
	v := Visibility{excluded: make(map[types.Section]bool)}
	for _, name := range excludedNames {
		section, ok := types.ParseSection(name)
		if !ok {
			if logf != nil {
				logf("ignoring unknown excluded section %q", name)
			}
			continue
		}
		if !v.excluded[section] {
			v.excluded[section] = true
			v.names = append(v.names, string(section))
		}
	}
	return v
}

// Visible reports whether the section may be displayed.
func (v Visibility) Visible(section types.Section) bool {
	return !v.excluded[section]
}

// ExcludedNames returns the canonical names of the excluded sections, in the
// order they were first configured. Never nil.
func (v Visibility) ExcludedNames() []string {
	if v.names == nil {
		return []string{}
	}
	return v.names
}
