// Package cmd implements the fuelup-components CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fuelup/components/internal/config"
	"github.com/fuelup/components/internal/logger"
	"github.com/fuelup/components/internal/render"
	"github.com/fuelup/components/pkg/component"
)

var versionTemplate, versionString string

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	versionTemplate = fmt.Sprintf("fuelup-components %s (commit %s, built %s)\n", version, commit, date)
	versionString = version
}

// Execute is the main entry point called from main.go.
func Execute() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.root().Execute(); err != nil {
		a.log.Error(err)
		os.Exit(1)
	}
}

// app holds the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *log.Logger
	out     io.Writer
	errOut  io.Writer
	cfgFile string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		v:      viper.New(),
		log:    logger.New(logger.Options{Writer: errOut}),
		out:    out,
		errOut: errOut,
	}
}

func (a *app) root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fuelup-components",
		Short: "Query the components distributed by fuelup",
		Long: `fuelup-components answers questions about the components fuelup
distributes: which exist, which are forc plugins, which are published and
which executables they ship.

Examples:
  fuelup-components list                   main components
  fuelup-components list --plugins         forc plugins
  fuelup-components show forc-client       one component
  fuelup-components executables            every plugin executable
  fuelup-components published fuel-core    is it published?
  fuelup-components browse                 interactive picker`,
		Version:           versionString,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.configure,
	}
	if versionTemplate != "" {
		rootCmd.SetVersionTemplate(versionTemplate)
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default "+config.ConfigPath()+")")
	flags.StringP("output", "o", config.OutputText, "output format: text, json or toml")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("manifest", "", "parse this manifest file instead of the embedded one")

	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = a.v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = a.v.BindPFlag("manifest", flags.Lookup("manifest"))

	rootCmd.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.pluginsCmd(),
		a.executablesCmd(),
		a.publishedCmd(),
		a.browseCmd(),
	)
	return rootCmd
}

func (a *app) configure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(logger.Options{Writer: a.errOut, Verbose: cfg.Verbose})
	if path := a.v.ConfigFileUsed(); path != "" {
		a.log.Debug("loaded config", "path", path)
	}
	return nil
}

// registry parses the manifest selected by the configuration.
func (a *app) registry() (*component.Registry, error) {
	if a.cfg.Manifest == "" {
		components, err := component.Load()
		if err != nil {
			return nil, fmt.Errorf("load embedded manifest: %w", err)
		}
		a.log.Debug("loaded manifest", "source", "embedded", "components", len(components))
		return component.New(components), nil
	}

	data, err := os.ReadFile(a.cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	components, err := component.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", a.cfg.Manifest, err)
	}
	a.log.Debug("loaded manifest", "source", a.cfg.Manifest, "components", len(components))
	return component.New(components), nil
}

func (a *app) renderer() *render.Renderer {
	return render.New(a.out, a.cfg.Output, a.cfg.NoColor)
}
