package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by every command: resolved configuration and
// the logger built from --verbose.
type app struct {
	configPath string
	verbose    bool
	timeout    time.Duration
	flags      config

	cfg    config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ddmform",
		Short: "Parse, render, and fill Liferay DDM structure definitions",
		Long: `ddmform reads Liferay Dynamic Data Mapping (DDM) structure definitions
(the XSD-like <root><dynamic-element/></root> documents) and turns them into
forms.

Definitions are read from a file path or an http(s) URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			zapConfig := zap.NewProductionConfig()
			if a.verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg.merge(a.flags, cmd.Flags().Changed)
			a.logger.Debug("configuration resolved",
				zap.String("config", a.configPath),
				zap.String("locale", a.cfg.Locale),
				zap.String("theme", a.cfg.Theme),
				zap.String("variant", a.cfg.Variant),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.DurationVar(&a.timeout, "timeout", 30*time.Second, "Timeout for remote definitions")
	flags.StringVarP(&a.flags.Locale, "locale", "l", "", "Locale used to localize labels (e.g. es_ES)")
	flags.StringVar(&a.flags.Theme, "theme", "", "Theme name")
	flags.StringVar(&a.flags.Variant, "variant", "", "Theme variant")
	flags.StringVar(&a.flags.Catalogs, "catalogs", "", "Directory of <locale>.yaml translation catalogs")
	flags.StringVar(&a.flags.AssetPrefix, "asset-prefix", "", "URL prefix the vanilla renderer serves assets from")

	root.AddCommand(
		newParseCmd(a),
		newRenderCmd(a),
		newFillCmd(a),
		newValidateCmd(a),
		newAuthStyleCmd(a),
		newThemesCmd(a),
	)
	return root
}
