package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var plugins, publishable, all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components",
		Long: `List main components, those without an is_plugin key, sorted by name.
Use --plugins, --publishable or --all to list other sets instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			out := a.renderer()
			switch {
			case plugins:
				return out.Plugins(r.Plugins())
			case publishable:
				return out.Components(r.Publishables())
			case all:
				return out.Components(r.All())
			}
			return out.Components(r.ExcludePlugins())
		},
	}

	cmd.Flags().BoolVar(&plugins, "plugins", false, "list forc plugins")
	cmd.Flags().BoolVar(&publishable, "publishable", false, "list publishable components")
	cmd.Flags().BoolVar(&all, "all", false, "list every manifest component")
	cmd.MarkFlagsMutuallyExclusive("plugins", "publishable", "all")
	return cmd
}
