package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/quantmind-br/canister-counter/internal/analyzer"
	"github.com/quantmind-br/canister-counter/internal/config"
	"github.com/quantmind-br/canister-counter/internal/manifest"
	"github.com/quantmind-br/canister-counter/internal/report"
	"github.com/quantmind-br/canister-counter/internal/utils"
	"github.com/quantmind-br/canister-counter/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

type rootOptions struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "canister-counter",
		Short: "Count the canisters declared in a dfx.json",
		Long: `canister-counter reads the dfx.json manifest of an Internet Computer
project, lists every canister it declares and summarises them by type.

Canisters without a string "type" attribute are counted as "unknown".`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(version.Full() + "\n")

	cmd.Flags().StringP("path", "p", config.DefaultManifestPath, "Directory containing dfx.json")
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.canister-counter/config.yaml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.cfgFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
	})
	log.Debug().Str("dir", cfg.Manifest.Path).Msg("Analyzing project")

	loader := manifest.NewLoader(manifest.WithLogger(log.WithComponent("manifest")))
	m, err := loader.Load(cfg.Manifest.Path)
	if err != nil {
		return err
	}

	res, err := analyzer.Analyze(m.Root)
	if err != nil {
		return err
	}

	log.Debug().
		Str("manifest", m.Path).
		Int64("bytes", m.Size).
		Str("size", humanize.Bytes(uint64(m.Size))).
		Int("canisters", res.Total).
		Int("types", len(res.Tally)).
		Msg("Analysis complete")

	return report.NewReporter(cmd.OutOrStdout()).Write(res)
}
