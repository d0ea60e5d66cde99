package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) publishedCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "published <name>",
		Short: "Report whether a component is published",
		Long: `Print true if name is published, false otherwise.

By default this matches the way fuelup has always checked: name only has
to appear somewhere in the publishable component names joined together,
so "core" matches "fuel-core". Pass --exact to require a full name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			published := r.ContainsPublished(args[0])
			if exact {
				published = r.IsPublished(args[0])
			}
			a.log.Debug("publish check", "name", args[0], "exact", exact, "published", published)
			return a.renderer().Bool("published", published)
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "require an exact name match")
	return cmd
}
