package errors

import (
	"net/http"
	"time"

	"github.com/JohnMCMa/maftools/models/dtos"
	"github.com/JohnMCMa/maftools/models/errs"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusBadRequest, "Bad Request", message)
}

func CreateSimpleNotFound(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusNotFound, "Not Found", message)
}

func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusInternalServerError, "Internal Server Error", message)
}

// FromError maps caller mistakes to 400 and everything else to 500.
func FromError(err error) dtos.GeneralErrorResponseDto {
	if errs.IsUserError(err) {
		return CreateSimpleBadRequest(err.Error())
	}
	return CreateSimpleInternalServerError(err.Error())
}

func createSimple(code int, status string, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   status,
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}
