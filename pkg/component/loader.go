// Package component describes the components fuelup distributes.
//
// The data comes from an embedded TOML manifest. Load and the package-level
// queries parse it again on every call; nothing is cached between calls, so
// every result is owned by its caller. Registry answers the same queries over
// a Components value that is already parsed.
package component

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

//go:embed components.toml
var embeddedManifest []byte

// manifestFile is the on-disk shape: one [component.<key>] table per entry.
// Required fields are pointers so that a missing key can be told apart from
// an empty value.
type manifestFile struct {
	Component map[string]manifestEntry `toml:"component"`
}

type manifestEntry struct {
	Name           *string   `toml:"name"`
	IsPlugin       *bool     `toml:"is_plugin"`
	TarballPrefix  *string   `toml:"tarball_prefix"`
	Executables    *[]string `toml:"executables"`
	RepositoryName *string   `toml:"repository_name"`
	Targets        *[]string `toml:"targets"`
	Publish        *bool     `toml:"publish"`
}

// Embedded returns a copy of the embedded manifest text.
func Embedded() []byte {
	return slices.Clone(embeddedManifest)
}

// Load parses the embedded manifest. An error here means the binary was built
// with a broken manifest; callers should not continue with partial data.
func Load() (Components, error) {
	return Parse(embeddedManifest)
}

// Parse decodes a components manifest.
//
// Malformed TOML, duplicate keys, wrong value types and missing required
// fields all yield a *ParseError. Unknown keys are ignored. is_plugin and
// publish may be omitted and are then left nil.
func Parse(data []byte) (Components, error) {
	var file manifestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, decodeError(err)
	}

	components := make(Components, len(file.Component))
	for _, key := range slices.Sorted(maps.Keys(file.Component)) {
		c, err := file.Component[key].component()
		if err != nil {
			return nil, &ParseError{Key: key, Err: err}
		}
		components[key] = c
	}
	return components, nil
}

// Marshal encodes components in the manifest layout. Absent optional fields
// stay absent, so Parse(Marshal(c)) reproduces c.
func Marshal(components Components) ([]byte, error) {
	file := struct {
		Component map[string]Component `toml:"component"`
	}{Component: make(map[string]Component, len(components))}

	for key, c := range components {
		c = c.clone()
		if c.Executables == nil {
			c.Executables = []string{}
		}
		if c.Targets == nil {
			c.Targets = []string{}
		}
		file.Component[key] = c
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshal components manifest: %w", err)
	}
	return data, nil
}

func (e manifestEntry) component() (Component, error) {
	switch {
	case e.Name == nil:
		return Component{}, missingField("name")
	case e.TarballPrefix == nil:
		return Component{}, missingField("tarball_prefix")
	case e.Executables == nil:
		return Component{}, missingField("executables")
	case e.RepositoryName == nil:
		return Component{}, missingField("repository_name")
	case e.Targets == nil:
		return Component{}, missingField("targets")
	}
	return Component{
		Name:           *e.Name,
		IsPlugin:       e.IsPlugin,
		TarballPrefix:  *e.TarballPrefix,
		Executables:    *e.Executables,
		RepositoryName: *e.RepositoryName,
		Targets:        *e.Targets,
		Publish:        e.Publish,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}

func decodeError(err error) *ParseError {
	pe := &ParseError{Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}
