package contexts

import (
	"github.com/JohnMCMa/maftools/models"
	"github.com/JohnMCMa/maftools/models/constants"
	"github.com/JohnMCMa/maftools/repositories/pfam"
	"github.com/JohnMCMa/maftools/services/runs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	// the run service, the loaded reference and other variables
	MaftoolsContext struct {
		echo.Context
		Config     *models.Config
		RunService *runs.RunService
		Validator  *validator.Validate
		Reference  pfam.Overview

		// set by middleware
		Granularity  constants.Granularity
		VariantClass constants.VariantClass
	}
)
