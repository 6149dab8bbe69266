package main

import (
	"net/http"
	"os"

	"github.com/JohnMCMa/maftools/contexts"
	gam "github.com/JohnMCMa/maftools/middleware"
	"github.com/JohnMCMa/maftools/models"
	"github.com/JohnMCMa/maftools/mvc/domains"
	serviceInfoMvc "github.com/JohnMCMa/maftools/mvc/service-info"
	"github.com/JohnMCMa/maftools/mvc/summaries"
	"github.com/JohnMCMa/maftools/services/bootstrap"
	"github.com/JohnMCMa/maftools/services/runs"
	"github.com/JohnMCMa/maftools/services/sanitation"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Error().Err(err).Msg("failed to read configuration")
		os.Exit(2)
	}

	bootstrap.ConfigureLogging(cfg.Debug)

	log.Info().
		Bool("debug", cfg.Debug).
		Str("domainReferencePath", cfg.Api.DomainReferencePath).
		Str("mutationSource", cfg.Api.MutationSource).
		Str("mafPath", cfg.Api.MafPath).
		Str("outputDirectory", cfg.Api.OutputDirectory).
		Str("elasticsearchUrl", cfg.Elasticsearch.Url).
		Str("elasticsearchIndex", cfg.Elasticsearch.Index).
		Int("runTtlMinutes", cfg.Runs.TtlMinutes).
		Str("port", cfg.Api.Port).
		Msg("using configuration")

	pipeline, err := bootstrap.NewPipeline(&cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to start")
		os.Exit(2)
	}

	// Service Singletons
	rs := runs.NewRunService(pipeline.Summaries, &cfg)
	ss := sanitation.NewSanitationService(rs, &cfg)
	defer ss.Stop()

	validate := validator.New()

	// Instantiate Server
	e := echo.New()
	e.HideBanner = true

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))
	if cfg.Debug {
		e.Use(middleware.Logger())
	}

	// -- Override handlers with the custom context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.MaftoolsContext{
				Context:    c,
				Config:     &cfg,
				RunService: rs,
				Validator:  validate,
				Reference:  pipeline.Reference,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	e.GET("/", serviceInfoMvc.GetWelcome)
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Summaries
	e.GET("/summaries/run", summaries.SummariesRun,
		// middleware
		gam.ValidateGranularityAttribute,
		gam.ValidateVariantClassAttribute)
	e.GET("/summaries/requests", summaries.GetAllSummaryRunRequests)
	e.GET("/summaries/requests/:id", summaries.GetSummaryRunRequest)

	// -- Domains
	e.GET("/domains/overview", domains.GetDomainsOverview)

	// Run
	if err := e.Start(":" + cfg.Api.Port); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
