package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/JohnMCMa/maftools/models"
	"github.com/JohnMCMa/maftools/models/indexes"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// EnsureMutationsIndex creates the mutations index with its mapping when
// it does not exist yet.
func EnsureMutationsIndex(ctx context.Context, cfg *models.Config, es *es7.Client) error {
	res, err := es.Indices.Exists([]string{cfg.Elasticsearch.Index}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to check mutations index")
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"mappings": indexes.MUTATION_INDEX_MAPPING,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode mutations mapping")
	}

	res, err = es.Indices.Create(cfg.Elasticsearch.Index,
		es.Indices.Create.WithContext(ctx),
		es.Indices.Create.WithBody(bytes.NewReader(body)))
	if err != nil {
		return errors.Wrap(err, "failed to create mutations index")
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.Errorf("failed to create mutations index: %s", res.Status())
	}

	log.Info().Str("index", cfg.Elasticsearch.Index).Msg("mutations index created")
	return nil
}

// IndexMutations bulk indexes MAF rows, one document per row.
func IndexMutations(ctx context.Context, cfg *models.Config, es *es7.Client, rows []map[string]interface{}) (esutil.BulkIndexerStats, error) {
	//see: https://www.elastic.co/blog/why-am-i-seeing-bulk-rejections-in-my-elasticsearch-cluster
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      cfg.Elasticsearch.Index,
		Client:     es,
		NumWorkers: 4,
		Refresh:    "wait_for",
	})
	if err != nil {
		return esutil.BulkIndexerStats{}, errors.Wrap(err, "failed to create bulk indexer")
	}

	var countFailed uint64
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return bi.Stats(), errors.Wrap(err, "failed to encode mutation")
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action: "index",
			Body:   bytes.NewReader(data),

			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				atomic.AddUint64(&countFailed, 1)
				if err != nil {
					log.Error().Err(err).Msg("failed to index mutation")
				} else {
					log.Error().Str("type", res.Error.Type).Str("reason", res.Error.Reason).Msg("failed to index mutation")
				}
			},
		})
		if err != nil {
			return bi.Stats(), errors.Wrap(err, "failed to queue mutation")
		}
	}

	if err := bi.Close(ctx); err != nil {
		return bi.Stats(), errors.Wrap(err, "failed to flush mutations")
	}

	stats := bi.Stats()
	if countFailed > 0 {
		return stats, errors.Errorf("%d of %d mutations failed to index", countFailed, stats.NumAdded)
	}
	return stats, nil
}
