package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/recera/stylecollector/cmd/stylec/internal/config"
	"github.com/recera/stylecollector/cmd/stylec/internal/manifest"
	"github.com/recera/stylecollector/internal/logging"
	"github.com/recera/stylecollector/pkg/styling"
)

// appFs is swapped for an in-memory filesystem in tests
var appFs = afero.NewOsFs()

// app carries state shared by the subcommands once the root has run
type app struct {
	dir        string
	configFile string
	logLevel   string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "stylec",
		Short: "stylec - inspect collected element styles",
		Long: `stylec compiles a style manifest into per-element style collectors and
shows the definitions they hold: content hashes, separators, class names and
the literal template each fragment was registered with.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (defaults to stylec.yaml in the project directory)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(newInspectCommand(a))
	rootCmd.AddCommand(newHashCommand())
	rootCmd.AddCommand(newWatchCommand(a))
	rootCmd.AddCommand(newBrowseCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(appFs, a.dir, a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	logging.Setup(cfg.Log.Level, cfg.Log.JSON, cmd.ErrOrStderr())
	logging.For(cmd.Name()).WithFields(logrus.Fields{
		"dir":      a.dir,
		"manifest": cfg.Manifest,
	}).Debug("configuration loaded")
	return nil
}

// manifestPath picks the positional argument if given, else the configured manifest
func (a *app) manifestPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.ManifestPath(a.dir)
}

// collect loads the manifest at path into a fresh registry
func (a *app) collect(path string) (*styling.Registry, error) {
	m, err := manifest.Load(appFs, path)
	if err != nil {
		return nil, err
	}

	reg := styling.NewRegistry()
	if _, err := m.Compile(reg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}
