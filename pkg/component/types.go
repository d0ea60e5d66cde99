package component

import "slices"

// Forc is an ordinary manifest entry; callers handle it slightly differently
// from other main components, so its name is kept as a constant.
const Forc = "forc"

// Fuelup never appears in the manifest. FromName synthesizes it.
const Fuelup = "fuelup"

// Component is one entry of the components manifest.
//
// IsPlugin and Publish are tri-state: nil means the key was absent from the
// manifest, which is not the same as an explicit false.
type Component struct {
	Name           string   `toml:"name" json:"name"`
	IsPlugin       *bool    `toml:"is_plugin,omitempty" json:"is_plugin,omitempty"`
	TarballPrefix  string   `toml:"tarball_prefix" json:"tarball_prefix"`
	Executables    []string `toml:"executables" json:"executables"`
	RepositoryName string   `toml:"repository_name" json:"repository_name"`
	Targets        []string `toml:"targets" json:"targets"`
	Publish        *bool    `toml:"publish,omitempty" json:"publish,omitempty"`
}

// Components maps the manifest section key to its Component. The key and
// Component.Name are kept as written; nothing checks that they agree.
type Components map[string]Component

// Plugin is the reduced view of a Component with is_plugin = true.
type Plugin struct {
	Name        string   `toml:"name" json:"name"`
	Executables []string `toml:"executables" json:"executables"`
}

// IsMainExecutable reports whether the plugin ships exactly one executable
// named after itself.
func (p Plugin) IsMainExecutable() bool {
	return len(p.Executables) == 1 && p.Executables[0] == p.Name
}

// Bool returns a pointer to v, for building Components by hand.
func Bool(v bool) *bool {
	return &v
}

// Main reports whether the manifest records no is_plugin opinion at all.
// An explicit is_plugin = false is not main.
func (c Component) Main() bool {
	return c.IsPlugin == nil
}

// Plugin reports whether is_plugin is present and true.
func (c Component) Plugin() bool {
	return c.IsPlugin != nil && *c.IsPlugin
}

// Publishable reports whether a publish key is present, whatever its value.
func (c Component) Publishable() bool {
	return c.Publish != nil
}

func (c Component) clone() Component {
	out := c
	if c.IsPlugin != nil {
		out.IsPlugin = Bool(*c.IsPlugin)
	}
	if c.Publish != nil {
		out.Publish = Bool(*c.Publish)
	}
	out.Executables = slices.Clone(c.Executables)
	out.Targets = slices.Clone(c.Targets)
	return out
}

func (c Component) plugin() Plugin {
	return Plugin{Name: c.Name, Executables: slices.Clone(c.Executables)}
}

func fuelupComponent() Component {
	return Component{
		Name:           Fuelup,
		TarballPrefix:  Fuelup,
		Executables:    []string{Fuelup},
		RepositoryName: Fuelup,
		Targets:        []string{Fuelup},
		IsPlugin:       Bool(false),
		Publish:        Bool(true),
	}
}
