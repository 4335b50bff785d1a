// Package catalog loads the built-in badge definitions.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"casebook/internal/reputation/models"
)

//go:embed badges.yaml
var builtin []byte

type document struct {
	Badges []models.BadgeRequest `yaml:"badges"`
}

// Builtin returns the embedded catalog.
func Builtin() ([]models.BadgeRequest, error) {
	return Parse(builtin)
}

// Parse decodes and validates a catalog document. Duplicate names are
// rejected.
func Parse(data []byte) ([]models.BadgeRequest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode badge catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Badges))
	for i := range doc.Badges {
		doc.Badges[i].Normalize()
		b := doc.Badges[i]
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("badge %d (%q): %w", i, b.Name, err)
		}
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("badge %q defined twice", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return doc.Badges, nil
}
