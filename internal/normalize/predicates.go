// Package normalize implements the CV normalization engine: the pure
// derivation rules that turn a loosely-shaped raw CV document into the
// canonical record set consumed by presentation templates.
package normalize

import (
	"strings"

	"github.com/ahzs645/portfolio-themes/internal/types"
)

// archivedTag marks an entry hidden from default views. Matched exactly,
// case-sensitive.
const archivedTag = "archived"

// IsPresent reports whether a date string means "ongoing": after trimming
// whitespace it equals "present" in any letter case.
func IsPresent(date string) bool {
	return strings.EqualFold(strings.TrimSpace(date), "present")
}

// IsPresentPtr is IsPresent lifted over a nullable date; nil is never present.
func IsPresentPtr(date *string) bool {
	return date != nil && IsPresent(*date)
}

// IsArchived reports whether the entry carries the archived tag. A nil entry
// or missing tag list is not archived.
func IsArchived(entry *types.RawEntry) bool {
	if entry == nil {
		return false
	}
	for _, tag := range entry.Tags {
		if tag == archivedTag {
			return true
		}
	}
	return false
}
