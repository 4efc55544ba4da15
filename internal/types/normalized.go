package types

// Position is one flattened role derived from an experience or volunteer
// entry. A single-position entry produces exactly one Position; a
// multi-position entry produces one per nested role, in source order.
type Position struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	StartDate  *string  `json:"startDate"`
	EndDate    *string  `json:"endDate"`
	Current    bool     `json:"isCurrent"`
	Location   string   `json:"location,omitempty"`
	URL        string   `json:"url,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights"`
}

// SocialLinks is the fixed set of named social slots handed to presentation
// templates. Each slot is nil when the source document has no matching link.
type SocialLinks struct {
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	YouTube  *string `json:"youtube"`
	Website  *string `json:"website"`
	Email    *string `json:"email"`
}

// NormalizedCV is the canonical, theme-agnostic record derived from a
// RawDocument. Every field is always present: hidden sections carry their
// zero value rather than being omitted, so consumers never need existence
// checks.
type NormalizedCV struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`

	About           string      `json:"about"`
	SocialLinks     SocialLinks `json:"socialLinks"`
	SocialRaw       []RawSocial `json:"socialRaw"`
	CurrentJobTitle *string     `json:"currentJobTitle"`

	Experience []Position `json:"experience"`
	Volunteer  []Position `json:"volunteer"`

	Projects                []*RawEntry `json:"projects"`
	Education               []*RawEntry `json:"education"`
	Awards                  []*RawEntry `json:"awards"`
	Publications            []*RawEntry `json:"publications"`
	Presentations           []*RawEntry `json:"presentations"`
	Certifications          []*RawEntry `json:"certifications"`
	ProfessionalDevelopment []*RawEntry `json:"professionalDevelopment"`

	Skills    []*RawEntry `json:"skills"`
	Languages []*RawEntry `json:"languages"`

	SectionsRaw      map[string]any `json:"sectionsRaw"`
	ExcludedSections []string       `json:"excludedSections"`
}
