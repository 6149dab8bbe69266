package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JohnMCMa/maftools/models"
	variantClass "github.com/JohnMCMa/maftools/models/constants/variant-class"
	variantType "github.com/JohnMCMa/maftools/models/constants/variant-type"
	"github.com/JohnMCMa/maftools/models/indexes"
	"github.com/JohnMCMa/maftools/utils"

	"github.com/Jeffail/gabs"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const defaultPageSize = 10000

// MutationStore serves mutation records from an elasticsearch index whose
// documents are MAF rows.
type MutationStore struct {
	Config *models.Config
	Client *es7.Client
}

func NewMutationStore(cfg *models.Config, es *es7.Client) *MutationStore {
	return &MutationStore{
		Config: cfg,
		Client: es,
	}
}

func (s *MutationStore) index() string {
	return s.Config.Elasticsearch.Index
}

// Columns lists the fields mapped on the mutations index.
func (s *MutationStore) Columns(ctx context.Context) ([]string, error) {
	res, err := s.Client.Indices.GetMapping(
		s.Client.Indices.GetMapping.WithContext(ctx),
		s.Client.Indices.GetMapping.WithIndex(s.index()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mutations mapping")
	}
	defer res.Body.Close()

	body, err := responseBody(res.String(), "get mutations mapping")
	if err != nil {
		return nil, err
	}

	parsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mutations mapping")
	}

	// the index may be an alias over several concrete indices
	indices, err := parsed.ChildrenMap()
	if err != nil {
		return nil, errors.Wrap(err, "unexpected mapping response")
	}

	seen := map[string]bool{}
	var columns []string
	for _, idx := range indices {
		properties, err := idx.Path("mappings.properties").ChildrenMap()
		if err != nil {
			continue
		}
		for name := range properties {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)

	return columns, nil
}

// Mutations pages through every matching document with search_after on
// _doc, MaxResults documents per request.
func (s *MutationStore) Mutations(ctx context.Context, q models.MutationQuery) ([]indexes.MutationRecord, error) {
	pageSize := s.Config.Elasticsearch.MaxResults
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var (
		records     []indexes.MutationRecord
		fetched     int
		searchAfter interface{}
		total       = -1
	)
	for {
		query := map[string]interface{}{
			"size":  pageSize,
			"query": buildMutationQuery(q),
			"_source": []string{
				"Hugo_Symbol", "Variant_Type", "Variant_Classification", q.ProteinChangeField,
			},
			"sort": []string{"_doc"},
		}
		if searchAfter != nil {
			query["search_after"] = searchAfter
		}

		result, err := s.search(ctx, query, "get mutations")
		if err != nil {
			return nil, err
		}

		if t, ok := result.Path("hits.total.value").Data().(float64); ok && total < 0 {
			total = int(t)
		}

		hits, err := result.Path("hits.hits").Children()
		if err != nil || len(hits) == 0 {
			break
		}
		fetched += len(hits)

		for _, hit := range hits {
			record, ok, err := decodeMutation(hit, q.ProteinChangeField)
			if err != nil {
				return nil, err
			}
			if ok {
				records = append(records, record)
			}
		}

		if len(hits) < pageSize || (total >= 0 && fetched >= total) {
			break
		}
		searchAfter = hits[len(hits)-1].Path("sort").Data()
		if searchAfter == nil {
			return nil, errors.New("failed to get mutations: hit without sort values")
		}
		log.Debug().Int("fetched", fetched).Int("total", total).Msg("mutations page")
	}

	if total >= 0 && fetched != total {
		return nil, errors.Errorf("failed to get mutations: fetched %d of %d documents", fetched, total)
	}
	if records == nil {
		records = []indexes.MutationRecord{}
	}

	return records, nil
}

func decodeMutation(hit *gabs.Container, proteinChangeField string) (indexes.MutationRecord, bool, error) {
	var record indexes.MutationRecord

	source, ok := hit.Path("_source").Data().(map[string]interface{})
	if !ok {
		return record, false, nil
	}
	if err := mapstructure.Decode(source, &record); err != nil {
		return record, false, errors.Wrap(err, "failed to decode mutation document")
	}
	if change, ok := source[proteinChangeField]; ok && change != nil {
		record.ProteinChange = fmt.Sprint(change)
	}

	return record, true, nil
}

// GeneTotals counts documents per gene over the same view Mutations returns.
func (s *MutationStore) GeneTotals(ctx context.Context, q models.MutationQuery) (map[string]int, error) {
	query := map[string]interface{}{
		"size":  0,
		"query": buildMutationQuery(q),
		"aggs": map[string]interface{}{
			"genes": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "Hugo_Symbol.keyword",
					"size":  65536, // increases the number of buckets returned (default is 10)
				},
			},
		},
	}

	result, err := s.search(ctx, query, "get gene totals")
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	buckets, err := result.Path("aggregations.genes.buckets").Children()
	if err != nil {
		return totals, nil
	}
	for _, bucket := range buckets {
		key := fmt.Sprint(bucket.Path("key").Data()) // ensure strings and numbers are expressed as strings
		if count, ok := bucket.Path("doc_count").Data().(float64); ok {
			totals[key] = int(count)
		}
	}

	return totals, nil
}

func (s *MutationStore) search(ctx context.Context, query map[string]interface{}, what string) (*gabs.Container, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s query", what)
	}

	if s.Config.Debug {
		// view the outbound elasticsearch query
		log.Debug().Str("query", buf.String()).Msg(what)
	}

	startTime := time.Now()
	res, err := s.Client.Search(
		s.Client.Search.WithContext(ctx),
		s.Client.Search.WithIndex(s.index()),
		s.Client.Search.WithBody(&buf),
		s.Client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", what)
	}
	defer res.Body.Close()

	body, err := responseBody(res.String(), what)
	if err != nil {
		return nil, err
	}

	parsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s response", what)
	}

	log.Debug().Dur("duration", time.Since(startTime)).Msg(what)
	return parsed, nil
}

// responseBody strips the "[200 OK] " status prefix esapi puts in front of
// the body in Response.String().
func responseBody(resultString string, what string) ([]byte, error) {
	bracketString, jsonBodyString := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	if !strings.Contains(bracketString, "200") {
		return nil, errors.Errorf("failed to %s: got '%s'", what, bracketString)
	}
	return []byte(jsonBodyString), nil
}

func buildMutationQuery(q models.MutationQuery) map[string]interface{} {
	var (
		filterMap  []map[string]interface{}
		mustNotMap []map[string]interface{}
	)

	if q.ExcludeCopyNumber {
		mustNotMap = append(mustNotMap, map[string]interface{}{
			"term": map[string]interface{}{
				"Variant_Type.keyword": string(variantType.CNV),
			},
		})
	}

	nonSynonymous := map[string]interface{}{
		"terms": map[string]interface{}{
			"Variant_Classification.keyword": variantClass.NonSynonymousClassifications,
		},
	}
	switch q.VariantClass {
	case variantClass.NonSynonymous:
		filterMap = append(filterMap, nonSynonymous)
	case variantClass.Synonymous:
		mustNotMap = append(mustNotMap, nonSynonymous)
	}

	boolMap := map[string]interface{}{}
	if len(filterMap) > 0 {
		boolMap["filter"] = filterMap
	}
	if len(mustNotMap) > 0 {
		boolMap["must_not"] = mustNotMap
	}
	if len(boolMap) == 0 {
		return map[string]interface{}{"match_all": map[string]interface{}{}}
	}

	return map[string]interface{}{"bool": boolMap}
}
