// Package main is the entry point for the convertd CLI: a thin front end
// over the conversion orchestrator for one-shot and interactive use.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/docforge/convertd/convert"
	"github.com/docforge/convertd/engine"
)

var rootCmd = &cobra.Command{
	Use:   "convertd",
	Short: "Office document conversion through a sandboxed engine",
	Long: `convertd stages office documents into a virtual filesystem, drives a
WebAssembly conversion engine over them, and collects the converted output
and any embedded media.

The engine module is loaded lazily on the first conversion and initialized
exactly once per process.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./convertd.yaml or ~/.config/convertd/config.yaml)")
	rootCmd.PersistentFlags().String("engine", "x2t.wasm", "path to the conversion engine module")
	rootCmd.PersistentFlags().String("staging", "", "staging directory (default: a temporary directory)")
	rootCmd.PersistentFlags().Duration("timeout", engine.DefaultInitTimeout, "engine readiness timeout")
	rootCmd.PersistentFlags().Bool("verbose", false, "log conversion progress")

	for _, name := range []string{"engine", "staging", "timeout", "verbose"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("convertd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "convertd"))
		}
	}

	viper.SetEnvPrefix("CONVERTD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// session bundles the pieces a command needs to run conversions.
type session struct {
	engine *engine.Engine
	orch   *convert.Orchestrator
	logger *zap.Logger
}

func (s *session) close(ctx context.Context) {
	_ = s.engine.Close(ctx)
	_ = s.logger.Sync()
}

// newSession wires engine, lifecycle, and orchestrator from configuration.
// Output files are delivered into outDir.
func newSession(ctx context.Context, outDir string) (*session, error) {
	logger := zap.NewNop()
	if viper.GetBool("verbose") {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}

	stagingDir := viper.GetString("staging")
	if stagingDir == "" {
		var err error
		stagingDir, err = os.MkdirTemp("", "convertd-staging-")
		if err != nil {
			return nil, err
		}
	}

	eng, err := engine.New(ctx, nil, engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = engine.DefaultInitTimeout
	}
	lc := engine.NewLifecycle(
		eng.Loader(engine.FileSource(viper.GetString("engine")), stagingDir),
		engine.WithTimeout(timeout),
		engine.WithLifecycleLogger(logger),
	)

	orch := convert.New(lc,
		convert.WithLogger(logger),
		convert.WithDelivery(convert.DirDelivery(outDir)),
	)

	return &session{engine: eng, orch: orch, logger: logger}, nil
}

func main() {
	start := time.Now()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (after %s)\n", err, time.Since(start).Round(time.Millisecond))
		os.Exit(1)
	}
}
