package domains

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JohnMCMa/maftools/contexts"
	"github.com/JohnMCMa/maftools/repositories/pfam"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDomainsOverview(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/domains/overview", nil)
	rec := httptest.NewRecorder()
	gc := &contexts.MaftoolsContext{
		Context:   e.NewContext(req, rec),
		Reference: pfam.Overview{Genes: 3, Intervals: 4, Labels: 4},
	}

	require.Nil(t, GetDomainsOverview(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	var overview map[string]int
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, map[string]int{"genes": 3, "intervals": 4, "domainLabels": 4}, overview)
}
