package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) pluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List forc plugins and their executables",
		Long: `List every component with is_plugin = true, sorted by name.
A filled marker means the plugin's only executable carries its own name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			return a.renderer().Plugins(r.Plugins())
		},
	}
}

func (a *app) executablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "executables",
		Short: "List every plugin executable",
		Long: `Print the executables of all plugins, in plugin name order.
Duplicates are printed as often as they occur.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			return a.renderer().Strings("executables", r.PluginExecutables())
		},
	}
}
