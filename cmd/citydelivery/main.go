// Command citydelivery reads city descriptions, distributes blocks among the
// pizzerias of each city and prints the per-direction counts.
//
// Usage:
//
//	citydelivery [input] [--config file] [--format text|yaml] [--policy abort|isolate]
//	             [--verify] [--map] [--verbose]
//
// Input is read from stdin when no file (or "-") is given.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvdelivery/batch"
	"github.com/katalvlaran/lvdelivery/cityio"
	"github.com/katalvlaran/lvdelivery/delivery"
	"github.com/katalvlaran/lvdelivery/internal/config"
	"github.com/katalvlaran/lvdelivery/internal/logging"
	"github.com/katalvlaran/lvdelivery/territory"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags holds the raw command-line values; they override the config file
// only when set explicitly.
type flags struct {
	configPath string
	format     string
	policy     string
	verify     bool
	showMap    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "citydelivery [input]",
		Short: "Distribute city blocks among pizzerias",
		Long: `Reads up to 50 city descriptions ("E N K" followed by K lines "x y c",
terminated by a line "0") and assigns every pizzeria exactly c blocks along
the four directions from its location.

For each city prints "Case n:" and one "north east south west" line per
pizzeria. If any city cannot be completed nothing is printed unless
--policy isolate is given.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML or TOML config file")
	fs.StringVarP(&f.format, "format", "f", config.FormatText, "output format: text or yaml")
	fs.StringVar(&f.policy, "policy", "abort", "failure policy: abort or isolate")
	fs.BoolVar(&f.verify, "verify", false, "check ownership invariants after each city")
	fs.BoolVar(&f.showMap, "map", false, "draw each finished city to stderr")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or the
// defaults when no file is given).
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("policy") {
		cfg.Policy = f.policy
	}
	if changed("verify") {
		cfg.Verify = f.verify
	}
	if changed("map") {
		cfg.Map = f.showMap
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string, f flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	in, name, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	instances, err := cityio.Parse(in)
	if err != nil {
		return err
	}
	logger.Info("input parsed", zap.String("source", name), zap.Int("cities", len(instances)))

	policy, err := batch.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	opts := []batch.Option{
		batch.WithPolicy(policy),
		batch.WithLogger(logger),
		batch.WithDeliveryOptions(delivery.WithMaxRounds(cfg.MaxRounds)),
	}
	if cfg.Verify {
		opts = append(opts, batch.WithVerify())
	}

	results, err := batch.Run(instances, opts...)
	if err != nil {
		return err
	}

	if cfg.Map {
		for _, r := range results {
			if r.Err == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Case %d:\n%s\n", r.Case, territory.FromCity(r.City).Render())
			}
		}
	}

	out := cmd.OutOrStdout()
	if cfg.Format == config.FormatYAML {
		return cityio.WriteYAML(out, batch.Cases(results))
	}
	return cityio.WriteText(out, batch.Cases(results))
}

// openInput returns the reader named by args, or stdin.
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	fh, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("open input: %w", err)
	}
	return fh, args[0], func() { _ = fh.Close() }, nil
}
