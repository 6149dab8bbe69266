package dtos

import (
	"time"

	"github.com/JohnMCMa/maftools/models/runs"
)

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}

// SummaryRunQueryDto holds the free-form query parameters of a summary run;
// granularity and variantClass are checked by middleware beforehand.
type SummaryRunQueryDto struct {
	ProteinChangeField string   `validate:"omitempty,max=128,excludesall=0x2C"`
	Top                int      `validate:"gte=0,lte=1000"`
	Domains            []string `validate:"dive,required"`
	BaseName           string   `validate:"omitempty,max=200,excludesall=/\\"`
}

type SummaryRunsResponseDto struct {
	Count   int                          `json:"count"`
	Results []runs.SummaryRunResponseDTO `json:"results"`
}
