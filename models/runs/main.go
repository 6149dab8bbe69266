package runs

import (
	"github.com/JohnMCMa/maftools/models/constants"
	"github.com/JohnMCMa/maftools/models/summaries"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

type Parameters struct {
	Granularity        constants.Granularity  `json:"granularity"`
	VariantClass       constants.VariantClass `json:"variantClass"`
	ProteinChangeField string                 `json:"proteinChangeField,omitempty"`
	Top                int                    `json:"top"`
	DomainsToLabel     []string               `json:"domains,omitempty"`
	BaseName           string                 `json:"baseName,omitempty"`
}

type SummaryRunRequest struct {
	Id         uuid.UUID         `json:"id"`
	Parameters Parameters        `json:"parameters"`
	State      State             `json:"state"`
	Message    string            `json:"message"`
	Report     *summaries.Report `json:"report,omitempty"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}

// SummaryRunResponseDTO is the short form of a run, without its tables.
type SummaryRunResponseDTO struct {
	Id         uuid.UUID  `json:"id"`
	Parameters Parameters `json:"parameters"`
	State      State      `json:"state"`
	Message    string     `json:"message"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

func (r SummaryRunRequest) ToResponseDTO() SummaryRunResponseDTO {
	return SummaryRunResponseDTO{
		Id:         r.Id,
		Parameters: r.Parameters,
		State:      r.State,
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
