package adorn

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is a declarative set of middleware registrations, typically
// loaded from YAML. Entries reference factories by name; ApplyManifest
// binds them against a factory table.
//
// Example:
//
//	middlewares:
//	  - name: auth
//	    before: logger
//	  - name: logger
//	  - name: metrics
//	    after: "*"
//	    context: Site.Page
type Manifest struct {
	Middlewares []ManifestEntry `yaml:"middlewares"`
}

// ManifestEntry declares one registration. Before and After accept a
// single name or a list of names; Context accepts a dotted path or a
// list of segments.
type ManifestEntry struct {
	Name    string      `yaml:"name"`
	Before  Priority    `yaml:"before"`
	After   Priority    `yaml:"after"`
	Context ContextPath `yaml:"context"`
}

// ContextPath is a hierarchical scope path. In YAML it may be written as
// a sequence of segments or as a single dot-delimited scalar.
type ContextPath []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ContextPath) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var path string
		if err := node.Decode(&path); err != nil {
			return err
		}

		*c = ContextPath(splitContext(path))

		return nil
	case yaml.SequenceNode:
		var segments []string
		if err := node.Decode(&segments); err != nil {
			return err
		}

		*c = ContextPath(segments)

		return nil
	default:
		return ErrInvalidPriority("context", "must be a string or a list of strings")
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. A bare scalar is coerced to
// a single-element priority; anything that is not a string or a list of
// strings is a validation error.
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return ErrInvalidPriority(priorityKey(node), "must be a string or a list of strings")
		}

		*p = Priority{name}

		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return ErrInvalidPriority(priorityKey(node), "must be a string or a list of strings")
		}

		*p = Priority(names)

		return nil
	default:
		return ErrInvalidPriority(priorityKey(node), "must be a string or a list of strings")
	}
}

// priorityKey is best-effort: the yaml node does not know which key it
// was decoded under, so fall back to the node position.
func priorityKey(node *yaml.Node) string {
	return fmt.Sprintf("line %d", node.Line)
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for _, entry := range manifest.Middlewares {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, ErrInvalidPriority("name", "manifest entries must be named")
		}
	}

	return &manifest, nil
}

// ApplyManifest registers every manifest entry against the registry,
// binding each entry to the factory registered under its name. All
// entries are checked against the factory table before anything is
// added, so a missing factory leaves the registry untouched.
func ApplyManifest(r Registry, manifest *Manifest, factories map[string]Factory) error {
	var missing []string

	for _, entry := range manifest.Middlewares {
		if _, ok := factories[entry.Name]; !ok {
			missing = append(missing, entry.Name)
		}
	}

	if len(missing) > 0 {
		return ErrUnknownMiddleware(missing)
	}

	for _, entry := range manifest.Middlewares {
		meta := Meta{
			Name:   entry.Name,
			Before: entry.Before,
			After:  entry.After,
		}

		if err := r.Add(meta, factories[entry.Name], entry.Context...); err != nil {
			return err
		}
	}

	return nil
}
