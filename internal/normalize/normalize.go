package normalize

import "github.com/ahzs645/portfolio-themes/internal/types"

// Options configures a normalization run. The exclusion list is always passed
// explicitly; the engine never reads ambient process state.
type Options struct {
	// ExcludedSections hides whole sections from the output. Unknown names
	// are ignored.
	ExcludedSections []string
	// Logf receives advisory diagnostics (unknown section names). nil
	// silences them.
	Logf func(format string, args ...any)
}

// NormalizeCV derives the canonical CV record from a parsed document. It is a
// pure function: same document and options, same output. It never fails on
// structurally-plausible partial input — a nil document, missing cv block, or
// missing sections all degrade to empty collections, and hidden sections emit
// their zero values so consumers can read every field unconditionally.
func NormalizeCV(doc *types.RawDocument, opts Options) *types.NormalizedCV {
	if doc == nil {
		doc = &types.RawDocument{}
	}
	cv := doc.CV
	visibility := NewVisibility(opts.ExcludedSections, opts.Logf)

	out := &types.NormalizedCV{
		Name:             cv.Name,
		Email:            cv.Email,
		Phone:            cv.Phone,
		Location:         cv.Location,
		Website:          cv.Website,
		SocialRaw:        []types.RawSocial{},
		Experience:       []types.Position{},
		Volunteer:        []types.Position{},
		SectionsRaw:      sectionsRaw(cv.Sections),
		ExcludedSections: visibility.ExcludedNames(),
	}

	if visibility.Visible(types.SectionAbout) {
		if content, ok := cv.Sections.Lookup(types.SectionAbout); ok {
			out.About = content.Text
		}
	}

	if visibility.Visible(types.SectionSocialLinks) {
		out.SocialLinks = NormalizeSocialLinks(cv.Social, cv.Email)
		if cv.Social != nil {
			out.SocialRaw = cv.Social
		}
	}

	if visibility.Visible(types.SectionExperience) {
		out.Experience = FlattenExperience(sectionEntries(cv.Sections, types.SectionExperience), FlattenOptions{})
		out.CurrentJobTitle = CurrentJobTitle(out.Experience)
	}

	if visibility.Visible(types.SectionVolunteer) {
		out.Volunteer = FlattenExperience(sectionEntries(cv.Sections, types.SectionVolunteer), FlattenOptions{})
	}

	out.Projects = gatedActive(cv.Sections, types.SectionProjects, visibility)
	out.Education = gatedActive(cv.Sections, types.SectionEducation, visibility)
	out.Awards = gatedActive(cv.Sections, types.SectionAwards, visibility)
	out.Publications = gatedActive(cv.Sections, types.SectionPublications, visibility)
	out.Presentations = gatedActive(cv.Sections, types.SectionPresentations, visibility)
	out.Certifications = gatedActive(cv.Sections, types.SectionCertifications, visibility)
	out.ProfessionalDevelopment = gatedActive(cv.Sections, types.SectionProfessionalDevelopment, visibility)

	out.Skills = gatedPassthrough(cv.Sections, types.SectionSkills, visibility)
	out.Languages = gatedPassthrough(cv.Sections, types.SectionLanguages, visibility)

	return out
}

// sectionEntries returns a section's entry list, or nil when the section is
// absent or not list-shaped.
func sectionEntries(sections types.SectionTable, section types.Section) []*types.RawEntry {
	content, ok := sections.Lookup(section)
	if !ok {
		return nil
	}
	return content.Entries
}

// gatedActive applies the visibility gate and archive filtering to a section.
func gatedActive(sections types.SectionTable, section types.Section, v Visibility) []*types.RawEntry {
	if !v.Visible(section) {
		return []*types.RawEntry{}
	}
	return FilterActive(sectionEntries(sections, section), 0)
}

// gatedPassthrough applies only the visibility gate; archived entries stay.
func gatedPassthrough(sections types.SectionTable, section types.Section, v Visibility) []*types.RawEntry {
	if !v.Visible(section) {
		return []*types.RawEntry{}
	}
	entries := sectionEntries(sections, section)
	if entries == nil {
		return []*types.RawEntry{}
	}
	return entries
}

// sectionsRaw collects the undecoded section values for consumers that want
// the original tree. Never nil.
func sectionsRaw(sections types.SectionTable) map[string]any {
	raw := make(map[string]any, len(sections))
	for name, content := range sections {
		raw[name] = content.Raw
	}
	return raw
}
