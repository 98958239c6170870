// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no skills")
	ErrBlankSkill     = errors.New("catalog contains a blank skill name")
	ErrDuplicateSkill = errors.New("catalog contains a duplicate skill name")
)

// Catalog is the ordered, fixed list of skill names shared by all sessions.
type Catalog struct {
	names []string
	index map[string]bool
}

// New builds a catalog from an ordered list of skill names.
// Names must be non-blank and unique.
func New(names []string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]bool, len(names)),
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, ErrBlankSkill
		}
		if c.index[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkill, name)
		}
		c.names = append(c.names, name)
		c.index[name] = true
	}

	return c, nil
}

type catalogFile struct {
	Skills []string `yaml:"skills"`
}

// Load reads a catalog from a YAML file of the form:
//
//	skills:
//	  - Skill name one
//	  - Skill name two
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(f.Skills)
}

// Default returns the built-in skill catalog used when no catalog file
// is configured.
func Default() *Catalog {
	c, err := New(defaultSkills)
	if err != nil {
		// defaultSkills is a compile-time constant list; this cannot fail.
		panic(err)
	}
	return c
}

// Names returns the skill names in catalog order. The returned slice is a copy.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Has reports whether name is in the catalog.
func (c *Catalog) Has(name string) bool {
	return c.index[name]
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

var defaultSkills = []string{
	"Advertising and Labeling Regulations (Pharma/BioTech)",
	"Advertising and Marketing Regulations (Retail and Consumer)",
	"Antitrust and Competition Law",
	"Commercial Contracts",
	"Corporate Governance",
	"Data Privacy and Security",
	"Employment and Labor Law",
	"Intellectual Property Licensing",
	"Mergers and Acquisitions",
	"Regulatory Compliance",
}
