package domains

import (
	"net/http"

	"github.com/JohnMCMa/maftools/contexts"

	"github.com/labstack/echo"
	"github.com/rs/zerolog/log"
)

func GetDomainsOverview(c echo.Context) error {
	log.Debug().Msg("GetDomainsOverview hit")
	return c.JSON(http.StatusOK, c.(*contexts.MaftoolsContext).Reference)
}
