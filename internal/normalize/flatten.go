package normalize

import "github.com/ahzs645/portfolio-themes/internal/types"

// FlattenOptions controls experience flattening. The zero value excludes
// archived entries and applies no limit.
type FlattenOptions struct {
	// IncludeArchived keeps entries tagged archived instead of skipping them.
	IncludeArchived bool
	// Limit truncates the final flattened list when positive. It applies to
	// the whole output, not per entry.
	Limit int
}

// FlattenExperience normalizes heterogeneous experience or volunteer entries
// into a flat, ordered list of positions. Single-position entries emit one
// record from their own fields; entries with a non-empty positions array emit
// one record per nested role, in array order, with title and dates falling
// back to the parent entry.
//
// Date fallback is nil-coalescing: a position's date pointer falls back to
// the parent only when the key is absent, never when it is an explicit empty
// string. Current status is evaluated on the resolved end date.
func FlattenExperience(entries []*types.RawEntry, opts FlattenOptions) []types.Position {
	flattened := make([]types.Position, 0, len(entries))

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if !opts.IncludeArchived && IsArchived(entry) {
			continue
		}

		if len(entry.Positions) > 0 {
			for _, pos := range entry.Positions {
				if pos == nil {
					continue
				}
				flattened = append(flattened, flattenNested(entry, pos))
			}
			continue
		}

		flattened = append(flattened, flattenSingle(entry))
	}

	if opts.Limit > 0 && len(flattened) > opts.Limit {
		flattened = flattened[:opts.Limit]
	}
	return flattened
}

// flattenSingle emits the record for an entry that carries its role fields
// directly.
func flattenSingle(entry *types.RawEntry) types.Position {
	title := entry.Position
	if title == "" {
		title = entry.Title
	}
	return types.Position{
		Company:    entry.DisplayName(),
		Title:      title,
		StartDate:  entry.StartDate,
		EndDate:    entry.EndDate,
		Current:    IsPresentPtr(entry.EndDate),
		Location:   entry.Location,
		URL:        entry.URL,
		Summary:    firstNonEmpty(entry.Summary, entry.Description),
		Highlights: entry.Highlights,
	}
}

// flattenNested emits the record for one role nested under a multi-position
// entry, resolving each field through its documented fallback chain.
func flattenNested(entry *types.RawEntry, pos *types.RawPosition) types.Position {
	title := firstNonEmpty(pos.Title, pos.Position, entry.Position, entry.Title)

	startDate := pos.StartDate
	if startDate == nil {
		startDate = entry.StartDate
	}
	endDate := pos.EndDate
	if endDate == nil {
		endDate = entry.EndDate
	}

	location := pos.Location
	if location == "" {
		location = entry.Location
	}

	return types.Position{
		Company:    entry.DisplayName(),
		Title:      title,
		StartDate:  startDate,
		EndDate:    endDate,
		Current:    IsPresentPtr(endDate),
		Location:   location,
		URL:        entry.URL,
		Summary:    pos.Summary,
		Highlights: pos.Highlights,
	}
}

// CurrentJobTitle selects the title shown as the person's current role: the
// first position marked current, else the first position, else nil.
func CurrentJobTitle(positions []types.Position) *string {
	for i := range positions {
		if positions[i].Current {
			return &positions[i].Title
		}
	}
	if len(positions) > 0 {
		return &positions[0].Title
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
