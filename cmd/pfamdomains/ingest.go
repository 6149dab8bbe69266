package main

import (
	"context"
	"os"
	"os/signal"

	esRepo "github.com/JohnMCMa/maftools/repositories/elasticsearch"
	"github.com/JohnMCMa/maftools/repositories/maf"
	"github.com/JohnMCMa/maftools/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index a MAF into elasticsearch",
	Long: `Load a MAF and bulk index one document per row into the mutations
index (MAFTOOLS_ES_MUTATIONS_INDEX), creating the index when missing. The
API can then serve summaries with MAFTOOLS_API_MUTATION_SOURCE=elasticsearch.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&cfg.Elasticsearch.Url, "es-url", cfg.Elasticsearch.Url, "elasticsearch url")
	ingestCmd.Flags().StringVar(&cfg.Elasticsearch.Index, "es-index", cfg.Elasticsearch.Index, "mutations index")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cfg.Api.MafPath == "" {
		return errors.New("--maf is required")
	}

	store, err := maf.NewMafStore(cfg.Api.MafPath)
	if err != nil {
		return err
	}

	es, err := utils.CreateEsConnection(&cfg)
	if err != nil {
		return err
	}

	if err := esRepo.EnsureMutationsIndex(ctx, &cfg, es); err != nil {
		return err
	}

	stats, err := esRepo.IndexMutations(ctx, &cfg, es, store.Rows())
	log.Info().
		Uint64("added", stats.NumAdded).
		Uint64("indexed", stats.NumIndexed).
		Uint64("failed", stats.NumFailed).
		Msg("ingestion finished")
	return err
}
