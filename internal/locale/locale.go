// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locale holds the user-facing labels and sentinel values for each
// supported language. The proxy takes its "untitled" and "unknown" sentinels
// from the bundle matching its translation target; the catalog client renders
// cards and messages from the same bundles.
package locale

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
)

//go:embed labels.yaml
var labelsYAML []byte

// Bundle is the label set for one language.
type Bundle struct {
	Lang string `yaml:"-"`

	Untitled        string `yaml:"untitled"`
	Unknown         string `yaml:"unknown"`
	UnknownFeminine string `yaml:"unknown_feminine"`

	Artist  string `yaml:"artist"`
	Culture string `yaml:"culture"`
	Dynasty string `yaml:"dynasty"`
	Date    string `yaml:"date"`

	AdditionalImages   string `yaml:"additional_images"`
	NoAdditionalImages string `yaml:"no_additional_images"`
	AdditionalImageAlt string `yaml:"additional_image_alt"`

	NoResults      string `yaml:"no_results"`
	SearchError    string `yaml:"search_error"`
	AllDepartments string `yaml:"all_departments"`
}

// Sentinels are the placeholder values substituted for missing text.
type Sentinels struct {
	Untitled string
	Unknown  string
}

// Sentinels returns the bundle's placeholder values.
func (b Bundle) Sentinels() Sentinels {
	return Sentinels{Untitled: b.Untitled, Unknown: b.Unknown}
}

// Catalog is the set of available bundles.
type Catalog struct {
	tags    []language.Tag
	bundles []Bundle
	matcher language.Matcher
}

// Default is the catalog built from the embedded labels.
var Default = MustParse(labelsYAML)

// Parse builds a catalog from YAML keyed by language tag. The first entry in
// document order is the fallback for unmatched languages.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing labels: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("labels: expected a mapping of languages")
	}

	root := doc.Content[0]
	c := &Catalog{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		tag, err := language.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("labels: invalid language %q: %w", key, err)
		}
		var b Bundle
		if err := root.Content[i+1].Decode(&b); err != nil {
			return nil, fmt.Errorf("labels: decoding %q: %w", key, err)
		}
		b.Lang = key
		c.tags = append(c.tags, tag)
		c.bundles = append(c.bundles, b)
	}
	if len(c.bundles) == 0 {
		return nil, fmt.Errorf("labels: no languages defined")
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// MustParse is Parse for embedded data; it panics on error.
func MustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Match returns the bundle closest to lang. Unparseable or unsupported
// languages get the fallback bundle.
func (c *Catalog) Match(lang string) Bundle {
	tag, err := language.Parse(lang)
	if err != nil {
		return c.bundles[0]
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.bundles[0]
	}
	return c.bundles[idx]
}

// Languages lists the bundle languages in document order.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.bundles))
	for i, b := range c.bundles {
		out[i] = b.Lang
	}
	return out
}

// For returns the bundle for lang from the default catalog.
func For(lang string) Bundle {
	return Default.Match(lang)
}
