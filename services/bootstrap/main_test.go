package bootstrap

import (
	"context"
	"testing"

	"github.com/JohnMCMa/maftools/repositories/pfam"
	"github.com/JohnMCMa/maftools/services/summary"
	"github.com/JohnMCMa/maftools/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipeline(t *testing.T) {
	cfg := common.InitConfig()
	cfg.Api.OutputDirectory = t.TempDir()

	pipeline, err := NewPipeline(cfg)
	require.Nil(t, err)
	assert.Equal(t, pfam.Overview{Genes: 3, Intervals: 4, Labels: 4}, pipeline.Reference)

	report, err := pipeline.Summaries.Run(context.Background(), summary.Request{Top: 2})
	require.Nil(t, err)

	require.Len(t, report.Domains, 3)
	assert.Equal(t, "P53", report.Domains[0].DomainLabel)
	assert.Equal(t, 3, report.Domains[0].NMuts)
	assert.Equal(t, 1, report.Domains[0].NGenes)
	assert.Equal(t, []string{"P53", "P-loop"}, report.Highlighted)
	assert.Len(t, report.ByPosition, 5)
}

func TestNewMutationStoreUnknownSource(t *testing.T) {
	cfg := common.InitConfig()
	cfg.Api.MutationSource = "postgres"

	_, err := NewMutationStore(cfg)
	assert.NotNil(t, err)
}

func TestNewPipelineMissingReference(t *testing.T) {
	cfg := common.InitConfig()
	cfg.Api.DomainReferencePath = ""

	_, err := NewPipeline(cfg)
	assert.NotNil(t, err)
}
