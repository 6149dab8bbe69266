package main

import (
	"fmt"

	"github.com/JohnMCMa/maftools/models"
	serviceInfo "github.com/JohnMCMa/maftools/models/constants/service-info"
	"github.com/JohnMCMa/maftools/services/bootstrap"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var (
	// environment first, flags override
	cfg     = loadConfig()
	verbose bool
)

func loadConfig() models.Config {
	var c models.Config
	if err := envconfig.Process("", &c); err != nil {
		panic(err)
	}
	return c
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pfamdomains",
	Short: "Summarize MAF mutations by amino-acid position and Pfam domain",
	Long: `pfamdomains aggregates the mutations of a MAF by gene and amino-acid
position, annotates every position with the first Pfam domain of the gene
that contains it, and summarizes mutations and genes per domain.

Settings default to the MAFTOOLS_* environment variables used by the API.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bootstrap.ConfigureLogging(verbose || cfg.Debug)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", serviceInfo.SERVICE_ARTIFACT, serviceInfo.SERVICE_VERSION)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cfg.Api.MafPath, "maf", cfg.Api.MafPath, "MAF file (tab-delimited, may be gzipped)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(ingestCmd)
}
