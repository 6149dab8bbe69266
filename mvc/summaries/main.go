package summaries

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/JohnMCMa/maftools/contexts"
	"github.com/JohnMCMa/maftools/models/dtos"
	"github.com/JohnMCMa/maftools/models/dtos/errors"
	"github.com/JohnMCMa/maftools/models/runs"
	"github.com/JohnMCMa/maftools/services/summary"
	"github.com/JohnMCMa/maftools/utils"

	"github.com/labstack/echo"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// SummariesRun queues a summary run in the background and returns it in
// its Queued state.
func SummariesRun(c echo.Context) error {
	log.Debug().Msg("SummariesRun hit")
	gc := c.(*contexts.MaftoolsContext)

	top := gc.Config.Api.DefaultTop
	if topQP := c.QueryParam("top"); topQP != "" {
		parsed, err := strconv.Atoi(topQP)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("invalid top '%s'", topQP)))
		}
		top = parsed
	}

	query := dtos.SummaryRunQueryDto{
		ProteinChangeField: c.QueryParam("proteinChangeField"),
		Top:                top,
		Domains:            utils.SplitCommaSeparated(c.QueryParam("domains")),
		BaseName:           c.QueryParam("baseName"),
	}
	if err := gc.Validator.Struct(query); err != nil {
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(err.Error()))
	}

	run, err := gc.RunService.Submit(summary.Request{
		Granularity:        string(gc.Granularity),
		VariantClass:       string(gc.VariantClass),
		ProteinChangeField: query.ProteinChangeField,
		Top:                query.Top,
		DomainsToLabel:     query.Domains,
		BaseName:           query.BaseName,
	})
	if err != nil {
		dto := errors.FromError(err)
		return c.JSON(dto.Code, dto)
	}

	return c.JSON(http.StatusAccepted, run.ToResponseDTO())
}

func GetAllSummaryRunRequests(c echo.Context) error {
	log.Debug().Msg("GetAllSummaryRunRequests hit")
	gc := c.(*contexts.MaftoolsContext)

	results := lo.Map(gc.RunService.List(), func(r runs.SummaryRunRequest, _ int) runs.SummaryRunResponseDTO {
		return r.ToResponseDTO()
	})

	return c.JSON(http.StatusOK, dtos.SummaryRunsResponseDto{
		Count:   len(results),
		Results: results,
	})
}

// GetSummaryRunRequest returns one run, including its report once done.
func GetSummaryRunRequest(c echo.Context) error {
	log.Debug().Msg("GetSummaryRunRequest hit")
	gc := c.(*contexts.MaftoolsContext)

	id := c.Param("id")
	run, found := gc.RunService.Get(id)
	if !found {
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(fmt.Sprintf("no summary run with id '%s'", id)))
	}

	return c.JSON(http.StatusOK, run)
}
