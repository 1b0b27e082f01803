package main

import (
	"os"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/binpick/graspros/bootstrap"
)

var (
	configPath string
	profile    string
	dryRun     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cudaenv",
	Short: "Provision the CUDA 10.2 library environment for the grasp services",
	Long: `cudaenv aliases the CUDA library sonames the grasp inference binaries
expect to the versions actually installed, and exports LD_LIBRARY_PATH from
the shell profile. Reruns are no-ops on an already provisioned host.`,
	SilenceUsage: true,
	RunE:         runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config overriding the default plan")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "shell profile to export LD_LIBRARY_PATH from (default ~/.bashrc)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log the plan without touching the filesystem")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	base := logrus.New()
	if verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	log := modular.NewRootLogger(base).GetModuleLogger()

	cfg, err := bootstrap.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if profile != "" {
		cfg.Profile = profile
	}

	b := bootstrap.New(cfg.Plan(), &log)
	b.SetDryRun(dryRun)

	result, err := b.Apply()
	if err != nil {
		return err
	}
	log.Infof("%d links applied, profile %s", len(result.Links), cfg.Profile)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
