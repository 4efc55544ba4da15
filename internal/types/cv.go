// Package types provides type definitions for the CV data model shared across
// the normalization engine, the CLI, and the HTTP server.
package types

import "gopkg.in/yaml.v3"

// RawDocument is the parsed form of an uploaded CV YAML file. Every field is
// optional; a zero RawDocument is a valid (empty) input to the normalizer.
type RawDocument struct {
	CV RawCV `yaml:"cv" json:"cv"`
}

// RawCV holds the top-level identity fields and the loosely-typed sections of
// a raw CV document.
type RawCV struct {
	Name     string       `yaml:"name" json:"name,omitempty"`
	Email    string       `yaml:"email" json:"email,omitempty"`
	Phone    string       `yaml:"phone" json:"phone,omitempty"`
	Location string       `yaml:"location" json:"location,omitempty"`
	Website  string       `yaml:"website" json:"website,omitempty"`
	Social   []RawSocial  `yaml:"social" json:"social,omitempty"`
	Sections SectionTable `yaml:"sections" json:"sections,omitempty"`
}

// RawSocial is one social profile reference as authored in the source YAML.
// Network names are matched case-insensitively against alias sets.
type RawSocial struct {
	Network string `yaml:"network" json:"network"`
	URL     string `yaml:"url" json:"url"`
}

// SectionTable maps a section name to its content. Section values in the
// source document are either a plain string (the about blurb) or a list of
// entries; both shapes decode without error.
type SectionTable map[string]SectionContent

// SectionContent is the decoded value of a single CV section. Exactly one of
// Text and Entries is populated depending on the source shape. Raw keeps the
// undecoded value for pass-through to consumers that want the original tree.
type SectionContent struct {
	Text    string      `json:"text,omitempty"`
	Entries []*RawEntry `json:"entries,omitempty"`
	Raw     any         `json:"-"`
}

// UnmarshalYAML decodes a section value from either a scalar or a sequence
// node. Mapping nodes and other shapes are preserved in Raw but otherwise
// ignored rather than failing the whole document.
func (s *SectionContent) UnmarshalYAML(value *yaml.Node) error {
	_ = value.Decode(&s.Raw)

	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&s.Text)
	case yaml.SequenceNode:
		return value.Decode(&s.Entries)
	default:
		return nil
	}
}

// RawEntry is one record within a CV section. The shape varies by section;
// this is the superset of fields the source documents use. Experience and
// volunteer entries may nest multiple positions under one company.
type RawEntry struct {
	Company      string         `yaml:"company" json:"company,omitempty"`
	Organization string         `yaml:"organization" json:"organization,omitempty"`
	Institution  string         `yaml:"institution" json:"institution,omitempty"`
	Name         string         `yaml:"name" json:"name,omitempty"`
	Title        string         `yaml:"title" json:"title,omitempty"`
	Position     string         `yaml:"position" json:"position,omitempty"`
	Area         string         `yaml:"area" json:"area,omitempty"`
	Degree       string         `yaml:"degree" json:"degree,omitempty"`
	Location     string         `yaml:"location" json:"location,omitempty"`
	StartDate    *string        `yaml:"start_date" json:"start_date,omitempty"`
	EndDate      *string        `yaml:"end_date" json:"end_date,omitempty"`
	Date         string         `yaml:"date" json:"date,omitempty"`
	URL          string         `yaml:"url" json:"url,omitempty"`
	Summary      string         `yaml:"summary" json:"summary,omitempty"`
	Description  string         `yaml:"description" json:"description,omitempty"`
	Highlights   []string       `yaml:"highlights" json:"highlights,omitempty"`
	Tags         []string       `yaml:"tags" json:"tags,omitempty"`
	Label        string         `yaml:"label" json:"label,omitempty"`
	Details      string         `yaml:"details" json:"details,omitempty"`
	Positions    []*RawPosition `yaml:"positions" json:"positions,omitempty"`
}

// DisplayName returns the first non-empty identifying field of the entry.
// Sections disagree on which key names an entry (company vs. institution vs.
// name), so consumers go through this instead of picking a field.
func (e *RawEntry) DisplayName() string {
	for _, candidate := range []string{e.Company, e.Organization, e.Institution, e.Name, e.Title} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// RawPosition is one role within a multi-position entry. Date fields are
// pointers so that an explicitly-authored empty string can be told apart from
// an absent key; that distinction drives the fallback rules in flattening.
type RawPosition struct {
	Title      string   `yaml:"title" json:"title,omitempty"`
	Position   string   `yaml:"position" json:"position,omitempty"`
	StartDate  *string  `yaml:"start_date" json:"start_date,omitempty"`
	EndDate    *string  `yaml:"end_date" json:"end_date,omitempty"`
	Location   string   `yaml:"location" json:"location,omitempty"`
	Summary    string   `yaml:"summary" json:"summary,omitempty"`
	Highlights []string `yaml:"highlights" json:"highlights,omitempty"`
}
