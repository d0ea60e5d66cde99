package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fuelup/components/internal/browser"
)

func (a *app) browseCmd() *cobra.Command {
	var (
		preselect []string
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick components interactively",
		Long: `Open an interactive picker over main components and plugins and
print the executables of the chosen components.

With --yes the picker is skipped and the --select components are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry()
			if err != nil {
				return err
			}
			for _, name := range preselect {
				if _, err := r.FromName(name); err != nil {
					return err
				}
			}

			sel, err := browser.Run(r, browser.Options{Preselect: preselect, Yes: yes})
			if err != nil {
				return err
			}
			a.log.Debug("selection", "components", sel.Components)
			return a.renderer().Strings("executables", sel.Executables)
		},
	}

	cmd.Flags().StringSliceVar(&preselect, "select", nil, "components to start selected")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the picker and use --select as is")
	return cmd
}
