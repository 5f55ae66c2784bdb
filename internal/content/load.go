package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// ErrInvalid is returned when content cannot be rendered at all.
var ErrInvalid = errors.New("invalid content")

// Default returns the embedded content set.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads content from path. An empty path yields the embedded content.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %q: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %q: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks only what rendering cannot do without: a name, at least one
// service, and unique service ids per profile. Optional fields are not checked.
func (s *Site) Validate() error {
	for _, p := range []struct {
		name    string
		profile *Profile
	}{
		{"institutional", &s.Institutional},
		{"personal", &s.Personal},
	} {
		if p.profile.Brand.Name == "" {
			return fmt.Errorf("%w: %s profile has no name", ErrInvalid, p.name)
		}
		if len(p.profile.Services) == 0 {
			return fmt.Errorf("%w: %s profile has no services", ErrInvalid, p.name)
		}
		seen := make(map[string]bool, len(p.profile.Services))
		for _, svc := range p.profile.Services {
			if svc.ID == "" {
				return fmt.Errorf("%w: %s service %q has no id", ErrInvalid, p.name, svc.Title)
			}
			if seen[svc.ID] {
				return fmt.Errorf("%w: %s service id %q is duplicated", ErrInvalid, p.name, svc.ID)
			}
			seen[svc.ID] = true
		}
	}
	return nil
}

// Marshal encodes the site back to YAML (used by `bemali content`).
func (s *Site) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
