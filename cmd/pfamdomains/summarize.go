package main

import (
	"context"
	"os"
	"os/signal"

	mutationSource "github.com/JohnMCMa/maftools/models/constants/mutation-source"
	"github.com/JohnMCMa/maftools/services/bootstrap"
	"github.com/JohnMCMa/maftools/services/reports"
	"github.com/JohnMCMa/maftools/services/summary"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	summarizeGranularity  string
	summarizeVariantClass string
	summarizeField        string
	summarizeTop          int
	summarizeLabels       []string
	summarizeOut          string
	summarizeProteinTable bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Run a domain summary and print it",
	Long: `Run a domain summary over the configured mutation store and print the
domain summary table to stdout.

With --out, both tables are written as <out>_<AAPos|AAChange>_summary.txt and
<out>_domainSummary.txt, and the bubble plot as <out>_domainSummary.png, under
--out-dir.`,
	Example: `  pfamdomains summarize --maf tcga_laml.maf.gz --domains prot_domains.tsv
  pfamdomains summarize --maf brca.maf --domains prot_domains.tsv --granularity byPositionAndChange --label PI3K_C2,Ras --out brca`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&cfg.Api.DomainReferencePath, "domains", cfg.Api.DomainReferencePath, "Pfam domain reference table")
	summarizeCmd.Flags().StringVar(&cfg.Api.MutationSource, "source", cfg.Api.MutationSource, "mutation source: maf or elasticsearch")
	summarizeCmd.Flags().StringVar(&cfg.Api.OutputDirectory, "out-dir", ".", "directory for written tables and plot")
	summarizeCmd.Flags().StringVar(&summarizeGranularity, "granularity", "", "byPosition (default) or byPositionAndChange")
	summarizeCmd.Flags().StringVar(&summarizeVariantClass, "variant-class", "", "nonSynonymous (default), synonymous or all")
	summarizeCmd.Flags().StringVar(&summarizeField, "field", "", "protein change column (default: first of HGVSp_Short, Protein_Change, AAChange)")
	summarizeCmd.Flags().IntVar(&summarizeTop, "top", cfg.Api.DefaultTop, "number of domains to highlight when no --label is given")
	summarizeCmd.Flags().StringSliceVar(&summarizeLabels, "label", nil, "domain labels to highlight")
	summarizeCmd.Flags().StringVar(&summarizeOut, "out", "", "base name for written tables and plot")
	summarizeCmd.Flags().BoolVar(&summarizeProteinTable, "protein-table", false, "print the protein summary instead of the domain summary")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// a batch run reads the MAF given on the command line unless told otherwise
	if cfg.Api.MutationSource == "" {
		cfg.Api.MutationSource = string(mutationSource.Maf)
	}

	pipeline, err := bootstrap.NewPipeline(&cfg)
	if err != nil {
		return err
	}

	report, err := pipeline.Summaries.Run(ctx, summary.Request{
		Granularity:        summarizeGranularity,
		VariantClass:       summarizeVariantClass,
		ProteinChangeField: summarizeField,
		Top:                summarizeTop,
		DomainsToLabel:     summarizeLabels,
		BaseName:           summarizeOut,
	})
	if err != nil {
		return err
	}

	log.Info().Strs("highlighted", report.Highlighted).Msg("summary done")

	header, rows := report.DomainTable()
	if summarizeProteinTable {
		header, rows = report.ProteinTable()
	}
	return reports.WriteTable(cmd.OutOrStdout(), header, rows)
}
