package middleware

import (
	"net/http"
	"strings"

	"github.com/JohnMCMa/maftools/contexts"
	"github.com/JohnMCMa/maftools/services/summary"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a single, known `granularity` HTTP query parameter
was provided; defaults to byPosition when absent
*/
func ValidateGranularityAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MaftoolsContext)

		g, err := summary.ValidateGranularity(joinedQueryParam(c, "granularity"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		gc.Granularity = g
		return next(gc)
	}
}

/*
Echo middleware to ensure a single, known `variantClass` HTTP query parameter
was provided; defaults to nonSynonymous when absent
*/
func ValidateVariantClassAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.MaftoolsContext)

		vc, err := summary.ValidateVariantClass(joinedQueryParam(c, "variantClass"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		gc.VariantClass = vc
		return next(gc)
	}
}

// repeated parameters (?granularity=a&granularity=b) count as several values
func joinedQueryParam(c echo.Context, name string) string {
	return strings.Join(c.QueryParams()[name], ",")
}
