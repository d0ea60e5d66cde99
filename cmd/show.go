package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fuelup/components/pkg/component"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one component",
		Long: `Show every field of the named component. fuelup itself is always
available, even when the manifest cannot be parsed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var (
				c   component.Component
				err error
			)
			if name == component.Fuelup || a.cfg.Manifest == "" {
				c, err = component.FromName(name)
			} else {
				var r *component.Registry
				if r, err = a.registry(); err != nil {
					return err
				}
				c, err = r.FromName(name)
			}
			if err != nil {
				return err
			}
			return a.renderer().Component(c)
		},
	}
}
