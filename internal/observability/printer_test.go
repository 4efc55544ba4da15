package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahzs645/portfolio-themes/internal/types"
)

func strPtr(s string) *string {
	return &s
}

func TestPrintIdentity(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintIdentity(&types.NormalizedCV{
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
		Location:         "London",
		CurrentJobTitle:  strPtr("Programmer"),
		ExcludedSections: []string{"projects"},
	})

	output := buf.String()
	assert.Contains(t, output, "NORMALIZED CV")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Programmer")
	assert.Contains(t, output, "projects")
}

func TestPrintIdentity_NilCV(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintIdentity(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSocialLinks(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSocialLinks(types.SocialLinks{
		GitHub: strPtr("https://github.com/ada"),
		Email:  strPtr("ada@example.com"),
	})

	output := buf.String()
	assert.Contains(t, output, "SOCIAL LINKS")
	assert.Contains(t, output, "https://github.com/ada")
	assert.Contains(t, output, "—", "empty slots render a placeholder")
}

func TestPrintExperience(t *testing.T) {
	t.Run("Empty list prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintExperience(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("Shows positions with truncation notice", func(t *testing.T) {
		positions := make([]types.Position, 7)
		for i := range positions {
			positions[i] = types.Position{
				Company:   "Acme",
				Title:     "Engineer",
				StartDate: strPtr("2020-01"),
			}
		}
		positions[0].Current = true

		var buf bytes.Buffer
		NewPrinter(&buf).PrintExperience(positions)

		output := buf.String()
		assert.Contains(t, output, "EXPERIENCE TIMELINE")
		assert.Contains(t, output, "Total positions: 7")
		assert.Contains(t, output, "... and 2 more positions")
		assert.Contains(t, output, "present")
	})
}
