package types

import "strings"

// Section identifies one of the closed set of CV section names the engine
// understands.
type Section string

// Canonical section names. Names outside this set are never an error; they
// are simply ignored by the visibility gate.
const (
	SectionAbout                   Section = "about"
	SectionExperience              Section = "experience"
	SectionProjects                Section = "projects"
	SectionEducation               Section = "education"
	SectionSkills                  Section = "skills"
	SectionLanguages               Section = "languages"
	SectionAwards                  Section = "awards"
	SectionPublications            Section = "publications"
	SectionPresentations           Section = "presentations"
	SectionVolunteer               Section = "volunteer"
	SectionCertifications          Section = "certifications"
	SectionProfessionalDevelopment Section = "professionalDevelopment"
	SectionSocialLinks             Section = "socialLinks"
)

// AllSections lists every canonical section in display order.
func AllSections() []Section {
	return []Section{
		SectionAbout,
		SectionExperience,
		SectionProjects,
		SectionEducation,
		SectionSkills,
		SectionLanguages,
		SectionAwards,
		SectionPublications,
		SectionPresentations,
		SectionVolunteer,
		SectionCertifications,
		SectionProfessionalDevelopment,
		SectionSocialLinks,
	}
}

// sectionAliases maps lowercased spellings (including the snake_case forms
// used in source YAML) to the canonical section.
var sectionAliases = map[string]Section{
	"about":                    SectionAbout,
	"experience":               SectionExperience,
	"projects":                 SectionProjects,
	"education":                SectionEducation,
	"skills":                   SectionSkills,
	"languages":                SectionLanguages,
	"awards":                   SectionAwards,
	"publications":             SectionPublications,
	"presentations":            SectionPresentations,
	"volunteer":                SectionVolunteer,
	"certifications":           SectionCertifications,
	"professionaldevelopment":  SectionProfessionalDevelopment,
	"professional_development": SectionProfessionalDevelopment,
	"sociallinks":              SectionSocialLinks,
	"social_links":             SectionSocialLinks,
}

// ParseSection resolves a section name to its canonical form. The second
// return value is false for names outside the closed enumeration.
func ParseSection(name string) (Section, bool) {
	s, ok := sectionAliases[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Lookup returns the content stored under the given canonical section,
// accepting either the canonical key or any known alias in the table.
func (t SectionTable) Lookup(section Section) (SectionContent, bool) {
	if content, ok := t[string(section)]; ok {
		return content, true
	}
	for key, content := range t {
		if parsed, ok := ParseSection(key); ok && parsed == section {
			return content, true
		}
	}
	return SectionContent{}, false
}
