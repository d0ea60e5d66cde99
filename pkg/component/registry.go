package component

import (
	"maps"
	"slices"
	"strings"
)

// Registry answers component queries over an already parsed manifest.
// Results are copies; a Registry never hands out its own slices.
type Registry struct {
	components Components
}

// New returns a Registry over components. The map must not be modified
// afterwards.
func New(components Components) *Registry {
	if components == nil {
		components = Components{}
	}
	return &Registry{components: components}
}

// FromName returns the named component. Fuelup is answered without looking
// at the manifest.
func (r *Registry) FromName(name string) (Component, error) {
	if name == Fuelup {
		return fuelupComponent(), nil
	}
	c, ok := r.components[name]
	if !ok {
		return Component{}, &NotFoundError{Name: name}
	}
	return c.clone(), nil
}

// All returns every manifest component sorted by name. Fuelup is not
// included.
func (r *Registry) All() []Component {
	return r.collect(func(Component) bool { return true })
}

// ExcludePlugins returns the main components, those with no is_plugin key,
// sorted by name.
func (r *Registry) ExcludePlugins() []Component {
	return r.collect(Component.Main)
}

// Publishables returns every component with a publish key, sorted by name.
func (r *Registry) Publishables() []Component {
	return r.collect(Component.Publishable)
}

// Plugins returns the plugin view of every component with is_plugin = true,
// sorted by name.
func (r *Registry) Plugins() []Plugin {
	components := r.collect(Component.Plugin)
	plugins := make([]Plugin, len(components))
	for i, c := range components {
		plugins[i] = c.plugin()
	}
	return plugins
}

// PluginExecutables concatenates the executables of Plugins, in order.
// Duplicates are kept.
func (r *Registry) PluginExecutables() []string {
	var executables []string
	for _, p := range r.Plugins() {
		executables = append(executables, p.Executables...)
	}
	return executables
}

// ContainsPublished reports whether name is a substring of the publishable
// component names joined together. "core" matches "fuel-core", and a name
// spanning two neighbours matches too. Use IsPublished for an exact check.
func (r *Registry) ContainsPublished(name string) bool {
	var joined strings.Builder
	for _, c := range r.Publishables() {
		joined.WriteString(c.Name)
	}
	return strings.Contains(joined.String(), name)
}

// IsPublished reports whether a publishable component is named exactly name.
func (r *Registry) IsPublished(name string) bool {
	return slices.ContainsFunc(r.Publishables(), func(c Component) bool {
		return c.Name == name
	})
}

// collect walks the map in key order so that components sharing a name come
// out in a stable order, then sorts by name.
func (r *Registry) collect(keep func(Component) bool) []Component {
	var out []Component
	for _, key := range slices.Sorted(maps.Keys(r.components)) {
		if c := r.components[key]; keep(c) {
			out = append(out, c.clone())
		}
	}
	slices.SortStableFunc(out, func(a, b Component) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// FromName loads the embedded manifest and returns the named component.
// Fuelup is returned without loading anything.
func FromName(name string) (Component, error) {
	if name == Fuelup {
		return fuelupComponent(), nil
	}
	r, err := load()
	if err != nil {
		return Component{}, err
	}
	return r.FromName(name)
}

// CollectExcludePlugins loads the embedded manifest and returns its main
// components sorted by name.
func CollectExcludePlugins() ([]Component, error) {
	r, err := load()
	if err != nil {
		return nil, err
	}
	return r.ExcludePlugins(), nil
}

// CollectPublishables loads the embedded manifest and returns its publishable
// components sorted by name.
func CollectPublishables() ([]Component, error) {
	r, err := load()
	if err != nil {
		return nil, err
	}
	return r.Publishables(), nil
}

// CollectPlugins loads the embedded manifest and returns its plugins sorted
// by name.
func CollectPlugins() ([]Plugin, error) {
	r, err := load()
	if err != nil {
		return nil, err
	}
	return r.Plugins(), nil
}

// CollectPluginExecutables loads the embedded manifest and flattens the
// executables of its plugins in plugin order.
func CollectPluginExecutables() ([]string, error) {
	r, err := load()
	if err != nil {
		return nil, err
	}
	return r.PluginExecutables(), nil
}

// ContainsPublished is Registry.ContainsPublished over the embedded manifest.
func ContainsPublished(name string) (bool, error) {
	r, err := load()
	if err != nil {
		return false, err
	}
	return r.ContainsPublished(name), nil
}

// IsPublished is Registry.IsPublished over the embedded manifest.
func IsPublished(name string) (bool, error) {
	r, err := load()
	if err != nil {
		return false, err
	}
	return r.IsPublished(name), nil
}

func load() (*Registry, error) {
	components, err := Load()
	if err != nil {
		return nil, err
	}
	return New(components), nil
}
