package utils

import (
	"time"

	"github.com/JohnMCMa/maftools/models"

	"github.com/cenkalti/backoff"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func CreateEsConnection(cfg *models.Config) (*es7.Client, error) {
	var (
		clusterURLs  = []string{cfg.Elasticsearch.Url}
		retryBackoff = backoff.NewExponentialBackOff()
	)

	esCfg := es7.Config{
		Addresses: clusterURLs,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,

		RetryOnStatus: []int{502, 503, 504, 429},

		// Configure the backoff function
		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		// Retry up to 5 attempts
		MaxRetries: 5,
	}

	es7Client, err := es7.NewClient(esCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create elasticsearch client")
	}

	log.Info().Str("version", es7.Version).Str("url", cfg.Elasticsearch.Url).Msg("using elasticsearch client")

	return es7Client, nil
}
