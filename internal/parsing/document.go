package parsing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ahzs645/portfolio-themes/internal/types"
)

// Parse decodes CV YAML text into a RawDocument. The input is only partially
// trusted: missing fields parse to zero values, and a field with an
// unexpected shape on one entry (scalar tags, malformed positions) is
// dropped rather than failing the document — the decoder zeroes the
// offending fields and keeps everything else. Only YAML syntax errors return
// a LoadError.
func Parse(data []byte) (*types.RawDocument, error) {
	var doc types.RawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return &doc, nil
		}
		return nil, &LoadError{
			Message: "failed to parse CV YAML",
			Cause:   err,
		}
	}
	return &doc, nil
}

// Load reads and parses a CV YAML file.
func Load(path string) (*types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(data)
}
